package pkg

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResponseBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseBytes(rec, ContentType.JSON, []byte(`{"ok":true}`), 201)
	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteTextResponseOK(rec, "all good")
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "all good", rec.Body.String())
}

func TestSendErrorJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	SendErrorJSON(rec, 404, "workout not found")
	assert.Equal(t, 404, rec.Code)

	var errResp apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.False(t, errResp.Success)
	assert.Equal(t, "workout not found", errResp.Message)
}

package pkg

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(message), http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

// apiError is the error envelope shared by all endpoints:
// every error body is {"success": false, "message": "..."}.
type apiError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SendErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	respBytes, err := json.Marshal(apiError{
		Success: false,
		Message: message,
	})
	if err != nil {
		// marshal of a two-field struct cannot really fail, but just in case
		http.Error(w, fmt.Sprintf("{%q: false}", "success"), http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

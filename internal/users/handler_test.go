package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/telemetry/metrics"
	"github.com/gymflow/gymflow/pkg"
)

type authServiceMock struct {
	sessions map[string]int
}

func newAuthServiceMock() *authServiceMock {
	return &authServiceMock{sessions: make(map[string]int)}
}

func (m *authServiceMock) Login(_ context.Context, userID int, _ time.Time) (string, error) {
	token := fmt.Sprintf("token-%d", userID)
	m.sessions[token] = userID
	return token, nil
}

func (m *authServiceMock) Logout(_ context.Context, token string) (bool, error) {
	if _, ok := m.sessions[token]; !ok {
		return false, errors.New("session not found")
	}
	delete(m.sessions, token)
	return true, nil
}

func testRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/register", handler.HandleRegister).Methods("POST")
	r.HandleFunc("/login", handler.HandleLogin).Methods("POST")
	r.HandleFunc("/logout", handler.HandleLogout).Methods("GET")
	r.HandleFunc("/getDataEditUsers/{id}", handler.HandleGetProfile).Methods("GET")
	r.HandleFunc("/editusers/{id}", handler.HandleEditProfile).Methods("PUT")
	r.HandleFunc("/deleteUsers/{id}", handler.HandleDeleteAccount).Methods("DELETE")
	return r
}

func TestHandleRegister(t *testing.T) {
	repo := NewMockUsersRepo()
	handler := NewHandler(repo, newAuthServiceMock(), metrics.NewTestManager())
	router := testRouter(handler)

	userName := gofakeit.Username()
	email := gofakeit.Email()
	body := fmt.Sprintf(`{"userName":%q,"email":%q,"password":"s3cret!"}`, userName, email)

	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
	assert.Contains(t, rr.Body.String(), `"userId":1`)

	stored, err := repo.GetByIdentifier(context.Background(), userName)
	require.NoError(t, err)
	assert.Equal(t, email, stored.Email)
	assert.NotEqual(t, "s3cret!", stored.Password)

	t.Run("duplicate username", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"userName":"solo"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader("{not json"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("with profile picture", func(t *testing.T) {
		body := `{"userName":"pic-user","email":"pic@gymflow.app","password":"s3cret!","image":"https://cdn.gymflow.app/pic.png"}`
		req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		stored, err := repo.GetByIdentifier(context.Background(), "pic-user")
		require.NoError(t, err)
		require.NotNil(t, stored.ProfilePictureURL)
		assert.Equal(t, "https://cdn.gymflow.app/pic.png", *stored.ProfilePictureURL)
	})
}

func TestHandleLogin(t *testing.T) {
	repo := NewMockUsersRepo()
	authService := newAuthServiceMock()
	handler := NewHandler(repo, authService, metrics.NewTestManager())
	router := testRouter(handler)

	passwordHash, err := pkg.HashPassword("let-me-in")
	require.NoError(t, err)
	userID, err := repo.Create(context.Background(), CreateUserParams{
		UserName:     "mile",
		Email:        "mile@gymflow.app",
		PasswordHash: passwordHash,
	})
	require.NoError(t, err)

	t.Run("ok with username", func(t *testing.T) {
		body := `{"identifier":"mile","password":"let-me-in"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), fmt.Sprintf(`"token":"token-%d"`, userID))
		assert.Contains(t, rr.Body.String(), `"user":{`)
		assert.Contains(t, rr.Body.String(), fmt.Sprintf(`"id":%d`, userID))
		assert.Contains(t, rr.Body.String(), `"userName":"mile"`)
		assert.Contains(t, rr.Body.String(), `"email":"mile@gymflow.app"`)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("ok with email", func(t *testing.T) {
		body := `{"identifier":"mile@gymflow.app","password":"let-me-in"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"identifier":"mile","password":"nope"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		body := `{"identifier":"ghost","password":"whatever"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing identifier", func(t *testing.T) {
		body := `{"password":"let-me-in"}`
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	repo := NewMockUsersRepo()
	authService := newAuthServiceMock()
	handler := NewHandler(repo, authService, metrics.NewTestManager())
	router := testRouter(handler)

	token, err := authService.Login(context.Background(), 1, time.Now())
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/logout", nil)
		req.Header.Set("X-GYMFLOW-TOKEN", token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "logged out")
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/logout", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/logout", nil)
		req.Header.Set("X-GYMFLOW-TOKEN", "does-not-exist")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleGetProfile(t *testing.T) {
	repo := NewMockUsersRepo()
	handler := NewHandler(repo, newAuthServiceMock(), metrics.NewTestManager())
	router := testRouter(handler)

	userID, err := repo.Create(context.Background(), CreateUserParams{
		UserName:     "ana",
		Email:        "ana@gymflow.app",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/getDataEditUsers/%d", userID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"userName":"ana"`)
		assert.Contains(t, rr.Body.String(), `"email":"ana@gymflow.app"`)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/getDataEditUsers/999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/getDataEditUsers/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleEditProfile(t *testing.T) {
	repo := NewMockUsersRepo()
	handler := NewHandler(repo, newAuthServiceMock(), metrics.NewTestManager())
	router := testRouter(handler)

	userID, err := repo.Create(context.Background(), CreateUserParams{
		UserName:     "old-name",
		Email:        "old@gymflow.app",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		body := `{"userName":"new-name"}`
		req := httptest.NewRequest("PUT", fmt.Sprintf("/editusers/%d", userID), strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		updated, err := repo.GetByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "new-name", updated.UserName)
		assert.Equal(t, "old@gymflow.app", updated.Email)
	})

	t.Run("no changes", func(t *testing.T) {
		req := httptest.NewRequest("PUT", fmt.Sprintf("/editusers/%d", userID), strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "no changes")
	})

	t.Run("not found", func(t *testing.T) {
		body := `{"userName":"whatever"}`
		req := httptest.NewRequest("PUT", "/editusers/999", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleDeleteAccount(t *testing.T) {
	repo := NewMockUsersRepo()
	handler := NewHandler(repo, newAuthServiceMock(), metrics.NewTestManager())
	router := testRouter(handler)

	userID, err := repo.Create(context.Background(), CreateUserParams{
		UserName:     "doomed",
		Email:        "doomed@gymflow.app",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/deleteUsers/%d", userID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		_, err := repo.GetByID(context.Background(), userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/deleteUsers/%d", userID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

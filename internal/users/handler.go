package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/gymflow/gymflow/internal/telemetry/metrics"
	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type usersRepo interface {
	Create(ctx context.Context, params CreateUserParams) (int, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Update(ctx context.Context, id int, params UpdateUserParams) error
	Delete(ctx context.Context, id int) error
}

type loginService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	repo           usersRepo
	authService    loginService
	metricsManager *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	authService loginService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

type registerRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register user, decode request: %s", err)
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserName == "" || req.Email == "" || req.Password == "" {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register user, hash password: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	params := CreateUserParams{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if req.Image != "" {
		params.ProfilePictureURL = &req.Image
	}

	userID, err := h.repo.Create(ctx, params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			pkg.SendErrorJSON(w, http.StatusConflict, "username or email already taken")
			return
		}
		log.Errorf("register user: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.metricsManager.CounterUsersRegistered.Inc()
	log.Debugf("new user registered: %s [id %d]", req.UserName, userID)

	respBytes, err := json.Marshal(map[string]any{
		"success": true,
		"message": "user registered",
		"userId":  userID,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

// loginRequest takes either the username or the email as identifier.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Identifier == "" || req.Password == "" {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "identifier and password are required")
		return
	}

	user, err := h.repo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.SendErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Errorf("login user: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !pkg.CheckPasswordHash(req.Password, user.Password) {
		pkg.SendErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.authService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login user, create session: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "login failed")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "login failed")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.logout")
	defer span.End()

	token := r.Header.Get("X-GYMFLOW-TOKEN")
	if token == "" {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "missing session token")
		return
	}

	loggedOut, err := h.authService.Logout(ctx, token)
	if err != nil || !loggedOut {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid session")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"logged out"}`)
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.getProfile")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "user not found")
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success": true,
		"user":    user,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

type editProfileRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

func (h *Handler) HandleEditProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.editProfile")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var params UpdateUserParams
	if req.UserName != "" {
		params.UserName = &req.UserName
	}
	if req.Email != "" {
		params.Email = &req.Email
	}
	if req.Password != "" {
		passwordHash, err := pkg.HashPassword(req.Password)
		if err != nil {
			log.Errorf("edit user %d, hash password: %s", userID, err)
			pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to update user")
			return
		}
		params.PasswordHash = &passwordHash
	}
	if req.Image != "" {
		params.ProfilePictureURL = &req.Image
	}

	if params.Empty() {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "no changes")
		return
	}

	if err := h.repo.Update(ctx, userID, params); err != nil {
		switch {
		case errors.Is(err, ErrNoChanges):
			pkg.SendErrorJSON(w, http.StatusBadRequest, "no changes")
		case errors.Is(err, ErrUserNotFound):
			pkg.SendErrorJSON(w, http.StatusNotFound, "user not found")
		case errors.Is(err, ErrUserExists):
			pkg.SendErrorJSON(w, http.StatusConflict, "username or email already taken")
		default:
			log.Errorf("edit user %d: %s", userID, err)
			pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"user updated"}`)
}

func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "users.deleteAccount")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "user not found")
			return
		}
		log.Errorf("delete user %d: %s", userID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	log.Debugf("user %d deleted", userID)
	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"user deleted"}`)
}

package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/gymflow/gymflow/internal/telemetry/metrics"
	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, params CreateWorkoutParams) (int, error)
	ListForUser(ctx context.Context, userID int) ([]Workout, error)
	Rename(ctx context.Context, id int, kind Kind, newName string) error
	Delete(ctx context.Context, id int, kind Kind) error
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type createWorkoutRequest struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	UserID int    `json:"userId"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workouts.create")
	defer span.End()

	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Kind == "" || req.UserID == 0 {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "name, kind and userId are required")
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	workoutID, err := h.repo.Create(ctx, CreateWorkoutParams{
		UserID: req.UserID,
		Name:   req.Name,
		Kind:   kind,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "user not found")
			return
		}
		log.Errorf("create %s workout: %s", kind, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to create workout")
		return
	}

	h.metricsManager.CounterWorkoutsCreated.WithLabelValues(kind.String()).Inc()

	respBytes, err := json.Marshal(map[string]any{
		"success":   true,
		"message":   "workout created",
		"workoutId": workoutID,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to create workout")
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	workouts, err := h.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list workouts")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success":  true,
		"workouts": workouts,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list workouts")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

type renameWorkoutRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (h *Handler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workouts.rename")
	defer span.End()

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req renameWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Kind == "" {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "name and kind are required")
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	if err := h.repo.Rename(ctx, workoutID, kind, req.Name); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "workout not found")
			return
		}
		log.Errorf("rename %s workout %d: %s", kind, workoutID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to rename workout")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"workout updated"}`)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	kind, err := ParseKind(vars["kind"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	if err := h.repo.Delete(ctx, workoutID, kind); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "workout not found")
			return
		}
		log.Errorf("delete %s workout %d: %s", kind, workoutID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to delete workout")
		return
	}

	log.Debugf("%s workout %d deleted", kind, workoutID)
	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"workout and exercises deleted"}`)
}

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

//go:generate mockgen -source=$GOFILE -destination=associations_handler_mocks_test.go -package=workouts_test

type associationsRepo interface {
	Add(ctx context.Context, params AddExerciseParams) (int, error)
	ListGym(ctx context.Context, workoutID int) ([]GymExercise, error)
	ListCardio(ctx context.Context, workoutID int) ([]CardioExercise, error)
	UpdateGymDetails(ctx context.Context, associationID int, details GymDetails) (int64, error)
	Delete(ctx context.Context, associationID int, kind Kind) error
}

type AssociationsHandler struct {
	repo           associationsRepo
	metricsManager *metrics.Manager
}

func NewAssociationsHandler(repo associationsRepo, metricsManager *metrics.Manager) *AssociationsHandler {
	return &AssociationsHandler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type addExerciseRequest struct {
	WorkoutID  int    `json:"workoutId"`
	Kind       string `json:"kind"`
	ExerciseID int    `json:"exerciseId"`
	UserID     int    `json:"userId"`
}

func (h *AssociationsHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutExercises.add")
	defer span.End()

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WorkoutID == 0 || req.Kind == "" || req.ExerciseID == 0 || req.UserID == 0 {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "workoutId, kind, exerciseId and userId are required")
		return
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	associationID, err := h.repo.Add(ctx, AddExerciseParams{
		WorkoutID:  req.WorkoutID,
		Kind:       kind,
		ExerciseID: req.ExerciseID,
		UserID:     req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrExerciseAlreadyAdded):
			pkg.SendErrorJSON(w, http.StatusConflict, "exercise already added to this workout")
		case errors.Is(err, ErrInvalidReference):
			pkg.SendErrorJSON(w, http.StatusNotFound, "workout or exercise not found")
		default:
			log.Errorf("add exercise %d to %s workout %d: %s", req.ExerciseID, kind, req.WorkoutID, err)
			pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to add exercise to workout")
		}
		return
	}

	h.metricsManager.CounterExercisesLogged.WithLabelValues(kind.String()).Inc()

	respBytes, err := json.Marshal(map[string]any{
		"success":       true,
		"message":       "exercise added to workout",
		"associationId": associationID,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to add exercise to workout")
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (h *AssociationsHandler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutExercises.list")
	defer span.End()

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["workoutId"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	kind, err := ParseKind(vars["kind"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	// the two kinds produce two different row shapes
	var exercises any
	if kind == KindGym {
		exercises, err = h.repo.ListGym(ctx, workoutID)
	} else {
		exercises, err = h.repo.ListCardio(ctx, workoutID)
	}
	if err != nil {
		log.Errorf("list exercises of %s workout %d: %s", kind, workoutID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list workout exercises")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success":   true,
		"exercises": exercises,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list workout exercises")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

// updateDetailsRequest carries the logged values as json.Number so the
// app can send them either as numbers or as raw text input strings.
type updateDetailsRequest struct {
	AssociationID int         `json:"associationId"`
	Weight        json.Number `json:"weight"`
	Reps          json.Number `json:"reps"`
	Sets          json.Number `json:"sets"`
}

func (h *AssociationsHandler) HandleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutExercises.updateDetails")
	defer span.End()

	var req updateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AssociationID == 0 {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "associationId is required")
		return
	}

	weight, errWeight := req.Weight.Float64()
	reps, errReps := strconv.Atoi(req.Reps.String())
	sets, errSets := strconv.Atoi(req.Sets.String())
	if errWeight != nil || errReps != nil || errSets != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "weight, reps and sets must be numeric")
		return
	}

	affectedRows, err := h.repo.UpdateGymDetails(ctx, req.AssociationID, GymDetails{
		Weight: weight,
		Reps:   reps,
		Sets:   sets,
	})
	if err != nil {
		if errors.Is(err, ErrAssociationNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "exercise not found in workout")
			return
		}
		log.Errorf("update details of workout exercise %d: %s", req.AssociationID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to update exercise details")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success":      true,
		"message":      "exercise details updated",
		"affectedRows": affectedRows,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to update exercise details")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (h *AssociationsHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutExercises.delete")
	defer span.End()

	vars := mux.Vars(r)
	associationID, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid exercise id")
		return
	}
	kind, err := ParseKind(vars["kind"])
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid workout kind")
		return
	}

	if err := h.repo.Delete(ctx, associationID, kind); err != nil {
		if errors.Is(err, ErrAssociationNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "exercise not found in workout")
			return
		}
		log.Errorf("delete %s workout exercise %d: %s", kind, associationID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to remove exercise from workout")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"success":true,"message":"exercise removed from workout"}`)
}

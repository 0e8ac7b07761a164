package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type exercisesProvider interface {
	List(ctx context.Context) ([]Exercise, error)
}

type Handler struct {
	exercises exercisesProvider
}

func NewHandler(exercises exercisesProvider) *Handler {
	return &Handler{exercises: exercises}
}

// HandleList returns the whole catalog as a bare JSON array, the format
// the mobile app picker expects.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "catalog.list")
	defer span.End()

	exercises, err := h.exercises.List(ctx)
	if err != nil {
		log.Errorf("list exercise catalog: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}

	respBytes, err := json.Marshal(exercises)
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

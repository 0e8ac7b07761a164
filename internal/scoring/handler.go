package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/gymflow/gymflow/internal/telemetry/metrics"
	"github.com/gymflow/gymflow/internal/telemetry/tracing"
	"github.com/gymflow/gymflow/pkg"
)

type scoringRepo interface {
	AddPoint(ctx context.Context, userID int) (int, error)
	Ranking(ctx context.Context, limit int) ([]RankingEntry, error)
}

type Handler struct {
	repo           scoringRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo scoringRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type addPointRequest struct {
	UserID int `json:"userId"`
}

func (h *Handler) HandleAddPoint(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "scoring.addPoint")
	defer span.End()

	var req addPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		pkg.SendErrorJSON(w, http.StatusBadRequest, "userId is required")
		return
	}

	total, err := h.repo.AddPoint(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.SendErrorJSON(w, http.StatusNotFound, "user not found")
			return
		}
		log.Errorf("add point for user %d: %s", req.UserID, err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to add point")
		return
	}

	h.metricsManager.CounterPointsAwarded.Inc()

	respBytes, err := json.Marshal(map[string]any{
		"success": true,
		"message": "point added",
		"points":  total,
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to add point")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (h *Handler) HandleRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "scoring.ranking")
	defer span.End()

	limit := DefaultRankingLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			pkg.SendErrorJSON(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	ranking, err := h.repo.Ranking(ctx, limit)
	if err != nil {
		log.Errorf("get ranking: %s", err)
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to get ranking")
		return
	}

	respBytes, err := json.Marshal(map[string]any{
		"success": true,
		"ranking": ranking,
		"total":   len(ranking),
	})
	if err != nil {
		pkg.SendErrorJSON(w, http.StatusInternalServerError, "failed to get ranking")
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

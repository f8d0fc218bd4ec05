package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/footballhub/matchday/internal/platform/logging"
	"github.com/footballhub/matchday/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	predictionService *usecase.PredictionService
	statsService      *usecase.StatsService
	ingestService     *usecase.IngestService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	statsService *usecase.StatsService,
	ingestService *usecase.IngestService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:      matchService,
		predictionService: predictionService,
		statsService:      statsService,
		ingestService:     ingestService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// DBStatus reports store reachability plus the stored match count.
func (h *Handler) DBStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DBStatus")
	defer span.End()

	count, err := h.matchService.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "db status check failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: match store unreachable", usecase.ErrDependencyUnavailable))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dbStatusDTO{
		Status:  "ok",
		Matches: count,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type dbStatusDTO struct {
	Status  string `json:"status"`
	Matches int    `json:"matches"`
}

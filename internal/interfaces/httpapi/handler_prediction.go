package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/footballhub/matchday/internal/usecase"
)

func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictMatch")
	defer span.End()

	var req predictMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	prediction, err := h.predictionService.Predict(ctx, req.HomeTeam, req.AwayTeam)
	if err != nil {
		h.logger.WarnContext(ctx, "predict failed", "home_team", req.HomeTeam, "away_team", req.AwayTeam, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(ctx, prediction))
}

func (h *Handler) PredictMatchBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictMatchBatch")
	defer span.End()

	var req predictBatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pairings := make([][2]string, 0, len(req.Matches))
	for _, pairing := range req.Matches {
		pairings = append(pairings, [2]string{pairing.HomeTeam, pairing.AwayTeam})
	}

	predictions := h.predictionService.PredictBatch(ctx, pairings)
	items := make([]predictionDTO, 0, len(predictions))
	for _, prediction := range predictions {
		items = append(items, predictionToDTO(ctx, prediction))
	}

	writeSuccess(ctx, w, http.StatusOK, predictBatchResponseDTO{
		Requested:   len(req.Matches),
		Predicted:   len(items),
		Predictions: items,
	})
}

func (h *Handler) GetTeamStrength(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStrength")
	defer span.End()

	team := strings.TrimSpace(r.PathValue("team"))
	if team == "" {
		writeError(ctx, w, fmt.Errorf("%w: team name is required", usecase.ErrInvalidInput))
		return
	}

	strength, known := h.predictionService.TeamStrength(team)
	writeSuccess(ctx, w, http.StatusOK, teamStrengthDTO{
		Team:     team,
		Strength: strength,
		Known:    known,
	})
}

type predictMatchRequest struct {
	HomeTeam string `json:"home_team" validate:"required,max=120"`
	AwayTeam string `json:"away_team" validate:"required,max=120"`
}

type predictBatchRequest struct {
	Matches []predictMatchRequest `json:"matches" validate:"required,min=1,max=100,dive"`
}

type predictionDTO struct {
	HomeTeam     string  `json:"homeTeam"`
	AwayTeam     string  `json:"awayTeam"`
	HomeStrength float64 `json:"homeStrength"`
	AwayStrength float64 `json:"awayStrength"`
	HomeWinPct   float64 `json:"homeWinPct"`
	DrawPct      float64 `json:"drawPct"`
	AwayWinPct   float64 `json:"awayWinPct"`
	Winner       string  `json:"winner"`
	Confidence   string  `json:"confidence"`
}

type predictBatchResponseDTO struct {
	Requested   int             `json:"requested"`
	Predicted   int             `json:"predicted"`
	Predictions []predictionDTO `json:"predictions"`
}

type teamStrengthDTO struct {
	Team     string  `json:"team"`
	Strength float64 `json:"strength"`
	Known    bool    `json:"known"`
}

func predictionToDTO(ctx context.Context, v usecase.Prediction) predictionDTO {
	_, span := startSpan(ctx, "httpapi.predictionToDTO")
	defer span.End()

	return predictionDTO{
		HomeTeam:     v.HomeTeam,
		AwayTeam:     v.AwayTeam,
		HomeStrength: v.HomeStrength,
		AwayStrength: v.AwayStrength,
		HomeWinPct:   v.HomeWinPct,
		DrawPct:      v.DrawPct,
		AwayWinPct:   v.AwayWinPct,
		Winner:       v.Winner,
		Confidence:   v.Confidence,
	}
}

func predictionToDTOPtr(ctx context.Context, v usecase.Prediction) *predictionDTO {
	dto := predictionToDTO(ctx, v)
	return &dto
}

package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/footballhub/matchday/internal/domain/stats"
	"github.com/footballhub/matchday/internal/usecase"
)

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	query := r.URL.Query()
	season := strings.TrimSpace(query.Get("season"))

	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	rows, err := h.statsService.TopScorers(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerSeasonDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, playerSeasonToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasonTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonTable")
	defer span.End()

	season := strings.TrimSpace(r.URL.Query().Get("season"))

	rows, err := h.statsService.Table(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list season table failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSeasonDTO, 0, len(rows))
	for position, row := range rows {
		items = append(items, teamSeasonToDTO(ctx, position+1, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) IngestPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayerSeasonStats")
	defer span.End()

	var req ingestPlayerSeasonStatsRequest
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

	rows := make([]stats.PlayerSeason, 0, len(req.Stats))
	for _, record := range req.Stats {
		rows = append(rows, stats.PlayerSeason{
			Player:      record.Player,
			Team:        record.Team,
			Season:      record.Season,
			Goals:       record.Goals,
			Assists:     record.Assists,
			Appearances: record.Appearances,
		})
	}

	if err := h.statsService.RecordPlayerSeasons(ctx, rows); err != nil {
		h.logger.WarnContext(ctx, "ingest player season stats failed", "records", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestStatsResponseDTO{Accepted: len(rows)})
}

func (h *Handler) IngestTeamSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeamSeasonStats")
	defer span.End()

	var req ingestTeamSeasonStatsRequest
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

	rows := make([]stats.TeamSeason, 0, len(req.Stats))
	for _, record := range req.Stats {
		rows = append(rows, stats.TeamSeason{
			Team:         record.Team,
			Season:       record.Season,
			Wins:         record.Wins,
			Draws:        record.Draws,
			Losses:       record.Losses,
			GoalsFor:     record.GoalsFor,
			GoalsAgainst: record.GoalsAgainst,
		})
	}

	if err := h.statsService.RecordTeamSeasons(ctx, rows); err != nil {
		h.logger.WarnContext(ctx, "ingest team season stats failed", "records", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestStatsResponseDTO{Accepted: len(rows)})
}

type ingestPlayerSeasonStatsRequest struct {
	Stats []ingestPlayerSeasonRecord `json:"stats" validate:"required,min=1,dive"`
}

type ingestPlayerSeasonRecord struct {
	Player      string `json:"player" validate:"required,max=120"`
	Team        string `json:"team" validate:"max=120"`
	Season      string `json:"season" validate:"required,max=20"`
	Goals       int    `json:"goals" validate:"gte=0"`
	Assists     int    `json:"assists" validate:"gte=0"`
	Appearances int    `json:"appearances" validate:"gte=0"`
}

type ingestTeamSeasonStatsRequest struct {
	Stats []ingestTeamSeasonRecord `json:"stats" validate:"required,min=1,dive"`
}

type ingestTeamSeasonRecord struct {
	Team         string `json:"team" validate:"required,max=120"`
	Season       string `json:"season" validate:"required,max=20"`
	Wins         int    `json:"wins" validate:"gte=0"`
	Draws        int    `json:"draws" validate:"gte=0"`
	Losses       int    `json:"losses" validate:"gte=0"`
	GoalsFor     int    `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int    `json:"goals_against" validate:"gte=0"`
}

type ingestStatsResponseDTO struct {
	Accepted int `json:"accepted"`
}

type playerSeasonDTO struct {
	Player      string `json:"player"`
	Team        string `json:"team,omitempty"`
	Season      string `json:"season"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Appearances int    `json:"appearances"`
}

type teamSeasonDTO struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Season         string `json:"season"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

func playerSeasonToDTO(ctx context.Context, v stats.PlayerSeason) playerSeasonDTO {
	_, span := startSpan(ctx, "httpapi.playerSeasonToDTO")
	defer span.End()

	return playerSeasonDTO{
		Player:      v.Player,
		Team:        v.Team,
		Season:      v.Season,
		Goals:       v.Goals,
		Assists:     v.Assists,
		Appearances: v.Appearances,
	}
}

func teamSeasonToDTO(ctx context.Context, position int, v stats.TeamSeason) teamSeasonDTO {
	_, span := startSpan(ctx, "httpapi.teamSeasonToDTO")
	defer span.End()

	return teamSeasonDTO{
		Position:       position,
		Team:           v.Team,
		Season:         v.Season,
		Played:         v.Played(),
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference(),
		Points:         v.Wins*3 + v.Draws,
	}
}

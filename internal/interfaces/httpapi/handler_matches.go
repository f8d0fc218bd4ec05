package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/footballhub/matchday/internal/domain/match"
	"github.com/footballhub/matchday/internal/usecase"
)

// ListMatches serves the stored match window, optionally enriched with an
// outcome prediction per match (?include=predictions).
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()

	filter := match.ListFilter{
		Competition: strings.TrimSpace(query.Get("competition")),
	}
	for _, raw := range query["status"] {
		for _, status := range strings.Split(raw, ",") {
			status = strings.TrimSpace(status)
			if status != "" {
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		filter.Limit = limit
	}

	matches, err := h.matchService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "competition", filter.Competition, "error", err)
		writeError(ctx, w, err)
		return
	}

	includePredictions := includesPredictions(query.Get("include"))

	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		dto := matchToDTO(ctx, item)
		if includePredictions && item.Status != match.StatusFinished {
			if prediction, err := h.predictionService.Predict(ctx, item.Key.HomeTeam, item.Key.AwayTeam); err == nil {
				dto.Prediction = predictionToDTOPtr(ctx, prediction)
			}
		}
		items = append(items, dto)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func includesPredictions(raw string) bool {
	for _, part := range strings.Split(raw, ",") {
		if strings.EqualFold(strings.TrimSpace(part), "predictions") {
			return true
		}
	}
	return false
}

type matchDTO struct {
	KickoffAt   string         `json:"kickoffAt"`
	HomeTeam    string         `json:"homeTeam"`
	AwayTeam    string         `json:"awayTeam"`
	Competition string         `json:"competition"`
	Season      string         `json:"season,omitempty"`
	Venue       string         `json:"venue,omitempty"`
	Status      string         `json:"status"`
	HomeScore   *int           `json:"homeScore,omitempty"`
	AwayScore   *int           `json:"awayScore,omitempty"`
	HomeLogo    string         `json:"homeLogo,omitempty"`
	AwayLogo    string         `json:"awayLogo,omitempty"`
	Lineups     *lineupsDTO    `json:"lineups,omitempty"`
	Prediction  *predictionDTO `json:"prediction,omitempty"`
}

type lineupsDTO struct {
	Home []lineupPlayerDTO `json:"home"`
	Away []lineupPlayerDTO `json:"away"`
}

type lineupPlayerDTO struct {
	Name     string   `json:"name"`
	Jersey   string   `json:"jersey"`
	Position string   `json:"position"`
	Photo    string   `json:"photo,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	return matchDTO{
		KickoffAt:   v.Key.KickoffAt.UTC().Format(time.RFC3339),
		HomeTeam:    v.Key.HomeTeam,
		AwayTeam:    v.Key.AwayTeam,
		Competition: v.Key.Competition,
		Season:      v.Season,
		Venue:       v.Venue,
		Status:      v.Status,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		HomeLogo:    v.HomeLogo,
		AwayLogo:    v.AwayLogo,
		Lineups:     lineupsToDTO(ctx, v.Lineups),
	}
}

func lineupsToDTO(ctx context.Context, v match.Lineups) *lineupsDTO {
	_, span := startSpan(ctx, "httpapi.lineupsToDTO")
	defer span.End()

	if v.Empty() {
		return nil
	}

	out := lineupsDTO{
		Home: make([]lineupPlayerDTO, 0, len(v.Home)),
		Away: make([]lineupPlayerDTO, 0, len(v.Away)),
	}
	for _, p := range v.Home {
		out.Home = append(out.Home, lineupPlayerToDTO(p))
	}
	for _, p := range v.Away {
		out.Away = append(out.Away, lineupPlayerToDTO(p))
	}
	return &out
}

func lineupPlayerToDTO(p match.LineupPlayer) lineupPlayerDTO {
	return lineupPlayerDTO{
		Name:     p.Name,
		Jersey:   p.Jersey,
		Position: p.Position,
		Photo:    p.Photo,
		Rating:   p.Rating,
	}
}

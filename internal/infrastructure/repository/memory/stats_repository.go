package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/footballhub/matchday/internal/domain/stats"
)

type playerSeasonKey struct {
	Player string
	Season string
}

type teamSeasonKey struct {
	Team   string
	Season string
}

type StatsRepository struct {
	mu      sync.RWMutex
	players map[playerSeasonKey]stats.PlayerSeason
	teams   map[teamSeasonKey]stats.TeamSeason
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{
		players: make(map[playerSeasonKey]stats.PlayerSeason),
		teams:   make(map[teamSeasonKey]stats.TeamSeason),
	}
}

func (r *StatsRepository) UpsertPlayerSeasons(_ context.Context, rows []stats.PlayerSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid player season %q: %w", row.Player, err)
		}
		r.players[playerSeasonKey{Player: row.Player, Season: row.Season}] = row
	}
	return nil
}

func (r *StatsRepository) UpsertTeamSeasons(_ context.Context, rows []stats.TeamSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid team season %q: %w", row.Team, err)
		}
		r.teams[teamSeasonKey{Team: row.Team, Season: row.Season}] = row
	}
	return nil
}

func (r *StatsRepository) ListPlayerSeasons(_ context.Context, season string, limit int) ([]stats.PlayerSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.PlayerSeason, 0, len(r.players))
	for _, row := range r.players {
		if season != "" && row.Season != season {
			continue
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Assists != out[j].Assists {
			return out[i].Assists > out[j].Assists
		}
		return out[i].Player < out[j].Player
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *StatsRepository) ListTeamSeasons(_ context.Context, season string) ([]stats.TeamSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.TeamSeason, 0, len(r.teams))
	for _, row := range r.teams {
		if season != "" && row.Season != season {
			continue
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pointsI := out[i].Wins*3 + out[i].Draws
		pointsJ := out[j].Wins*3 + out[j].Draws
		if pointsI != pointsJ {
			return pointsI > pointsJ
		}
		if out[i].GoalDifference() != out[j].GoalDifference() {
			return out[i].GoalDifference() > out[j].GoalDifference()
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}

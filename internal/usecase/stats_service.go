package usecase

import (
	"context"
	"fmt"

	"github.com/footballhub/matchday/internal/domain/stats"
	"github.com/footballhub/matchday/internal/platform/logging"
)

// StatsService manages season aggregates keyed by {subject, season}.
type StatsService struct {
	repo   stats.Repository
	logger *logging.Logger
}

func NewStatsService(repo stats.Repository, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{repo: repo, logger: logger}
}

// RecordPlayerSeasons upserts player aggregates. Every row is validated
// before anything is written.
func (s *StatsService) RecordPlayerSeasons(ctx context.Context, rows []stats.PlayerSeason) error {
	ctx, span := startUsecaseSpan(ctx, "stats.record_player_seasons")
	defer span.End()

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return s.repo.UpsertPlayerSeasons(ctx, rows)
}

func (s *StatsService) RecordTeamSeasons(ctx context.Context, rows []stats.TeamSeason) error {
	ctx, span := startUsecaseSpan(ctx, "stats.record_team_seasons")
	defer span.End()

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return s.repo.UpsertTeamSeasons(ctx, rows)
}

// TopScorers returns player aggregates sorted by goals.
func (s *StatsService) TopScorers(ctx context.Context, season string, limit int) ([]stats.PlayerSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "stats.top_scorers")
	defer span.End()

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	return s.repo.ListPlayerSeasons(ctx, season, limit)
}

// Table returns team aggregates in standings order.
func (s *StatsService) Table(ctx context.Context, season string) ([]stats.TeamSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "stats.table")
	defer span.End()
	return s.repo.ListTeamSeasons(ctx, season)
}

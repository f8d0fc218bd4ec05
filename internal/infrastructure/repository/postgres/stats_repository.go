package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footballhub/matchday/internal/domain/stats"
	qb "github.com/footballhub/matchday/internal/platform/querybuilder"
)

const playerSeasonUpsertSuffix = `ON CONFLICT (player, season)
DO UPDATE SET
    team = EXCLUDED.team,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    appearances = EXCLUDED.appearances,
    updated_at = NOW()`

const teamSeasonUpsertSuffix = `ON CONFLICT (team, season)
DO UPDATE SET
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    updated_at = NOW()`

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) UpsertPlayerSeasons(ctx context.Context, rows []stats.PlayerSeason) error {
	if len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid player season %q: %w", row.Player, err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert player seasons: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		query, args, err := qb.InsertModel("player_season_stats", newPlayerSeasonInsertModel(row), playerSeasonUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert player season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player season %q: %w", row.Player, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert player seasons tx: %w", err)
	}
	return nil
}

func (r *StatsRepository) UpsertTeamSeasons(ctx context.Context, rows []stats.TeamSeason) error {
	if len(rows) == 0 {
		return nil
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid team season %q: %w", row.Team, err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert team seasons: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		query, args, err := qb.InsertModel("team_season_stats", newTeamSeasonInsertModel(row), teamSeasonUpsertSuffix)
		if err != nil {
			return fmt.Errorf("build upsert team season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team season %q: %w", row.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert team seasons tx: %w", err)
	}
	return nil
}

func (r *StatsRepository) ListPlayerSeasons(ctx context.Context, season string, limit int) ([]stats.PlayerSeason, error) {
	builder := qb.Select("*").From("player_season_stats").
		OrderBy("goals DESC", "assists DESC", "player")
	if season != "" {
		builder = builder.Where(qb.Eq("season", season))
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player seasons query: %w", err)
	}

	var models []playerSeasonTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select player seasons: %w", err)
	}

	out := make([]stats.PlayerSeason, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *StatsRepository) ListTeamSeasons(ctx context.Context, season string) ([]stats.TeamSeason, error) {
	builder := qb.Select("*").From("team_season_stats").
		OrderBy("(wins * 3 + draws) DESC", "(goals_for - goals_against) DESC", "team")
	if season != "" {
		builder = builder.Where(qb.Eq("season", season))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team seasons query: %w", err)
	}

	var models []teamSeasonTableModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("select team seasons: %w", err)
	}

	out := make([]stats.TeamSeason, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

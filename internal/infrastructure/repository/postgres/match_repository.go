package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footballhub/matchday/internal/domain/match"
	qb "github.com/footballhub/matchday/internal/platform/querybuilder"
)

const matchUpsertSuffix = `ON CONFLICT (kickoff_at, home_team, away_team, competition)
DO UPDATE SET
    external_id = EXCLUDED.external_id,
    season = EXCLUDED.season,
    venue = EXCLUDED.venue,
    status = EXCLUDED.status,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    home_logo = EXCLUDED.home_logo,
    away_logo = EXCLUDED.away_logo,
    lineups = EXCLUDED.lineups,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Upsert writes the batch in one transaction, keyed by the natural match
// key. created_at is never touched on conflict, so first-seen timestamps
// survive reingestion.
func (r *MatchRepository) Upsert(ctx context.Context, matches []match.Match) (match.UpsertResult, error) {
	var result match.UpsertResult
	if len(matches) == 0 {
		return result, nil
	}

	for _, item := range matches {
		if err := item.Validate(); err != nil {
			return match.UpsertResult{}, fmt.Errorf("invalid match %s vs %s: %w", item.Key.HomeTeam, item.Key.AwayTeam, err)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.UpsertResult{}, fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range matches {
		insertModel, err := newMatchInsertModel(item)
		if err != nil {
			return match.UpsertResult{}, err
		}

		query, args, err := qb.InsertModel("matches", insertModel, matchUpsertSuffix)
		if err != nil {
			return match.UpsertResult{}, fmt.Errorf("build upsert match query: %w", err)
		}

		var inserted bool
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return match.UpsertResult{}, fmt.Errorf("upsert match %s vs %s: %w", item.Key.HomeTeam, item.Key.AwayTeam, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return match.UpsertResult{}, fmt.Errorf("commit upsert matches tx: %w", err)
	}
	return result, nil
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.Competition != "" {
		conditions = append(conditions, qb.Eq("competition", filter.Competition))
	}
	if len(filter.Statuses) > 0 {
		values := make([]any, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			values = append(values, status)
		}
		conditions = append(conditions, qb.In("status", values))
	}

	builder := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("kickoff_at", "competition", "home_team")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) GetByKey(ctx context.Context, key match.Key) (match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("kickoff_at", key.KickoffAt.UTC()),
			qb.Eq("home_team", key.HomeTeam),
			qb.Eq("away_team", key.AwayTeam),
			qb.Eq("competition", key.Competition),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build select match by key query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, fmt.Errorf("select match by key: %w", err)
	}
	return row.toDomain()
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	query, _, err := qb.Select("COUNT(*)").From("matches").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

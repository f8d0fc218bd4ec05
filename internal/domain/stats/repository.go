package stats

import "context"

type Repository interface {
	// UpsertPlayerSeasons writes the batch keyed by (player, season).
	UpsertPlayerSeasons(ctx context.Context, rows []PlayerSeason) error
	// UpsertTeamSeasons writes the batch keyed by (team, season).
	UpsertTeamSeasons(ctx context.Context, rows []TeamSeason) error
	ListPlayerSeasons(ctx context.Context, season string, limit int) ([]PlayerSeason, error)
	ListTeamSeasons(ctx context.Context, season string) ([]TeamSeason, error)
}

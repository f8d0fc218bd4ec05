package usecase

import (
	"context"
	"time"

	"github.com/footballhub/matchday/internal/domain/match"
)

// ExternalMatch is one raw event as reported by the scoreboard provider,
// before classification and competition naming are applied.
type ExternalMatch struct {
	ExternalID      string
	CompetitionCode string
	Season          string
	KickoffAt       time.Time
	KickoffParsed   bool
	HomeTeam        string
	AwayTeam        string
	HomeLogo        string
	AwayLogo        string
	HomeScore       *int
	AwayScore       *int
	Venue           string
	StatusTypeName  string
	StatusState     string
	StatusCompleted bool
}

// ScoreboardProvider fetches raw match data from the upstream sports API.
type ScoreboardProvider interface {
	// FetchScoreboard returns the events for one competition on one date.
	// The date is formatted YYYYMMDD.
	FetchScoreboard(ctx context.Context, competitionCode, date string) ([]ExternalMatch, error)
	// FetchLineups returns the starting lineups for one event, or empty
	// lineups when the provider has none yet.
	FetchLineups(ctx context.Context, competitionCode, eventID string) (match.Lineups, error)
}

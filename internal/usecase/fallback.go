package usecase

import (
	"fmt"
	"time"

	"github.com/footballhub/matchday/internal/domain/match"
)

type fallbackFixture struct {
	offsetHours int
	homeTeam    string
	awayTeam    string
	competition string
}

// fallbackFixtures is the built-in schedule served when a full ingestion pass
// produces zero events. Kickoffs are fixed offsets from the run anchor so the
// set stays deterministic under an injected clock.
var fallbackFixtures = []fallbackFixture{
	{2, "Manchester City", "Arsenal", "Premier League"},
	{5, "Liverpool", "Chelsea", "Premier League"},
	{24, "Manchester United", "Tottenham", "Premier League"},
	{30, "Brighton", "Aston Villa", "Premier League"},
	{48, "Newcastle", "West Ham", "Premier League"},
	{3, "Barcelona", "Real Madrid", "La Liga"},
	{26, "Atletico Madrid", "Sevilla", "La Liga"},
	{4, "Inter Milan", "AC Milan", "Serie A"},
	{28, "Juventus", "Napoli", "Serie A"},
	{6, "Bayern Munich", "Borussia Dortmund", "Bundesliga"},
	{32, "RB Leipzig", "Bayer Leverkusen", "Bundesliga"},
	{7, "Paris Saint-Germain", "Marseille", "Ligue 1"},
	{36, "Monaco", "Lyon", "Ligue 1"},
}

// FallbackMatches builds the degraded-mode fixture set anchored at now. All
// entries are scheduled with no scores.
func FallbackMatches(now time.Time, season string) []match.Match {
	anchor := now.UTC().Truncate(time.Minute)
	out := make([]match.Match, 0, len(fallbackFixtures))
	for _, item := range fallbackFixtures {
		out = append(out, match.Match{
			Key: match.Key{
				KickoffAt:   anchor.Add(time.Duration(item.offsetHours) * time.Hour),
				HomeTeam:    item.homeTeam,
				AwayTeam:    item.awayTeam,
				Competition: item.competition,
			},
			Season: season,
			Status: match.StatusScheduled,
		})
	}
	return out
}

// DeriveSeasonLabel maps a point in time to the European season that
// contains it, e.g. 2025-03 -> "2024/2025".
func DeriveSeasonLabel(now time.Time) string {
	year := now.UTC().Year()
	if now.UTC().Month() >= time.July {
		return seasonSpan(year)
	}
	return seasonSpan(year - 1)
}

func seasonSpan(startYear int) string {
	return fmt.Sprintf("%d/%d", startYear, startYear+1)
}

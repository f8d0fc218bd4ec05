package espn

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/footballhub/matchday/internal/usecase"
)

// mapScoreboardEvent normalizes one provider event. Sides are resolved by the
// homeAway designator only; an event missing either designator is dropped.
func mapScoreboardEvent(competitionCode string, event scoreboardEvent) (usecase.ExternalMatch, bool) {
	if len(event.Competitions) == 0 {
		return usecase.ExternalMatch{}, false
	}
	competition := event.Competitions[0]

	var home, away *eventCompetitor
	for i := range competition.Competitors {
		switch strings.ToLower(strings.TrimSpace(competition.Competitors[i].HomeAway)) {
		case "home":
			home = &competition.Competitors[i]
		case "away":
			away = &competition.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return usecase.ExternalMatch{}, false
	}

	homeTeam := teamName(home.Team)
	awayTeam := teamName(away.Team)
	if homeTeam == "" || awayTeam == "" {
		return usecase.ExternalMatch{}, false
	}

	kickoffAt, kickoffParsed := parseKickoff(event.Date)

	return usecase.ExternalMatch{
		ExternalID:      strings.TrimSpace(event.ID),
		CompetitionCode: competitionCode,
		Season:          seasonLabel(event.Season.Year),
		KickoffAt:       kickoffAt,
		KickoffParsed:   kickoffParsed,
		HomeTeam:        homeTeam,
		AwayTeam:        awayTeam,
		HomeLogo:        strings.TrimSpace(home.Team.Logo),
		AwayLogo:        strings.TrimSpace(away.Team.Logo),
		HomeScore:       parseScore(home.Score),
		AwayScore:       parseScore(away.Score),
		Venue:           strings.TrimSpace(competition.Venue.FullName),
		StatusTypeName:  strings.TrimSpace(event.Status.Type.Name),
		StatusState:     strings.TrimSpace(event.Status.Type.State),
		StatusCompleted: event.Status.Type.Completed,
	}, true
}

func teamName(team eventTeam) string {
	if name := strings.TrimSpace(team.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(team.Name)
}

func parseKickoff(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseScore coerces the provider score field, which arrives as a quoted
// string for soccer events. Anything non-numeric becomes a nil score.
func parseScore(raw []byte) *int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	text := strings.Trim(string(trimmed), `"`)
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &value
}

func seasonLabel(year int) string {
	if year <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", year, year+1)
}

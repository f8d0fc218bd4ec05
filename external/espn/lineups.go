package espn

import (
	"strconv"
	"strings"

	"github.com/footballhub/matchday/internal/domain/match"
)

// extractLineups pulls the starting elevens out of a match summary. Boxscore
// player groups are preferred; the roster list is a fallback used only when
// the boxscore yields nothing for either side.
func extractLineups(envelope summaryEnvelope) match.Lineups {
	lineups := extractBoxscoreLineups(envelope.Boxscore.Players, sidesByTeamID(envelope.Rosters))
	if lineups.Empty() {
		lineups = extractRosterLineups(envelope.Rosters)
	}
	return lineups
}

// sidesByTeamID maps team ids to their homeAway designator. The roster
// section is the only place the summary payload states sides explicitly;
// the boxscore order carries no meaning.
func sidesByTeamID(rosters []summaryRoster) map[string]string {
	sides := make(map[string]string, len(rosters))
	for _, roster := range rosters {
		id := strings.TrimSpace(roster.Team.ID)
		side := strings.ToLower(strings.TrimSpace(roster.HomeAway))
		if id == "" || (side != "home" && side != "away") {
			continue
		}
		sides[id] = side
	}
	return sides
}

// extractBoxscoreLineups reads the starter groups. A team whose id resolves
// to no homeAway designator is dropped, never guessed from array position.
func extractBoxscoreLineups(teams []boxscoreTeam, sides map[string]string) match.Lineups {
	var lineups match.Lineups
	for _, team := range teams {
		side, ok := sides[strings.TrimSpace(team.Team.ID)]
		if !ok {
			continue
		}

		var players []match.LineupPlayer
		for _, group := range team.Statistics {
			if !isStarterGroup(group.Name) {
				continue
			}
			for _, athlete := range group.Athletes {
				players = append(players, mapLineupPlayer(athlete.Athlete, extractRating(athlete.Stats)))
			}
		}

		if side == "home" {
			lineups.Home = append(lineups.Home, players...)
		} else {
			lineups.Away = append(lineups.Away, players...)
		}
	}
	return lineups
}

func extractRosterLineups(rosters []summaryRoster) match.Lineups {
	var lineups match.Lineups
	for _, roster := range rosters {
		var players []match.LineupPlayer
		for _, entry := range roster.Roster {
			if !entry.Starter {
				continue
			}
			players = append(players, mapLineupPlayer(entry.Athlete, nil))
		}

		if strings.EqualFold(strings.TrimSpace(roster.HomeAway), "home") {
			lineups.Home = append(lineups.Home, players...)
		} else {
			lineups.Away = append(lineups.Away, players...)
		}
	}
	return lineups
}

func isStarterGroup(name string) bool {
	return name == "Starters" || strings.Contains(strings.ToLower(name), "starter")
}

func mapLineupPlayer(info athleteInfo, rating *float64) match.LineupPlayer {
	name := strings.TrimSpace(info.DisplayName)
	if name == "" {
		name = strings.TrimSpace(info.Name)
	}
	if name == "" {
		name = "Unknown"
	}

	position := strings.TrimSpace(info.Position.Abbreviation)
	if position == "" {
		position = "N/A"
	}

	return match.LineupPlayer{
		Name:     name,
		Jersey:   strings.TrimSpace(info.Jersey),
		Position: position,
		Photo:    strings.TrimSpace(info.Headshot.Href),
		Rating:   rating,
	}
}

// extractRating scans the raw stat strings for a rating-like entry. Most
// payloads carry plain numbers here, so a nil rating is the common case.
func extractRating(stats []string) *float64 {
	for _, stat := range stats {
		lowered := strings.ToLower(stat)
		if !strings.Contains(lowered, "rating") && !strings.Contains(lowered, "grade") {
			continue
		}
		if value, err := strconv.ParseFloat(strings.TrimSpace(stat), 64); err == nil {
			return &value
		}
	}
	return nil
}

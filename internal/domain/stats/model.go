package stats

import (
	"fmt"
	"strings"
)

// PlayerSeason is one player's aggregate line for a season. The natural key
// is (player, season).
type PlayerSeason struct {
	Player      string
	Team        string
	Season      string
	Goals       int
	Assists     int
	Appearances int
}

func (p PlayerSeason) Validate() error {
	if strings.TrimSpace(p.Player) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Season) == "" {
		return fmt.Errorf("season is required")
	}
	if p.Goals < 0 || p.Assists < 0 || p.Appearances < 0 {
		return fmt.Errorf("stat counters must not be negative")
	}
	return nil
}

// TeamSeason is one team's aggregate record for a season. The natural key is
// (team, season).
type TeamSeason struct {
	Team         string
	Season       string
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

func (t TeamSeason) Validate() error {
	if strings.TrimSpace(t.Team) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Season) == "" {
		return fmt.Errorf("season is required")
	}
	if t.Wins < 0 || t.Draws < 0 || t.Losses < 0 || t.GoalsFor < 0 || t.GoalsAgainst < 0 {
		return fmt.Errorf("stat counters must not be negative")
	}
	return nil
}

func (t TeamSeason) Played() int {
	return t.Wins + t.Draws + t.Losses
}

func (t TeamSeason) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

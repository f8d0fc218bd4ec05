package match

import (
	"fmt"
	"strings"
	"time"
)

// Key is the natural identity of a match. Two ingestion passes observing the
// same real-world event must resolve to the same Key.
type Key struct {
	KickoffAt   time.Time
	HomeTeam    string
	AwayTeam    string
	Competition string
}

func (k Key) Validate() error {
	if k.KickoffAt.IsZero() {
		return fmt.Errorf("kickoff time is required")
	}
	if strings.TrimSpace(k.HomeTeam) == "" {
		return fmt.Errorf("home team is required")
	}
	if strings.TrimSpace(k.AwayTeam) == "" {
		return fmt.Errorf("away team is required")
	}
	if strings.TrimSpace(k.Competition) == "" {
		return fmt.Errorf("competition is required")
	}
	return nil
}

// LineupPlayer is one starting player for one side of a match.
type LineupPlayer struct {
	Name     string   `json:"name"`
	Jersey   string   `json:"jersey"`
	Position string   `json:"position"`
	Photo    string   `json:"photo,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

type Lineups struct {
	Home []LineupPlayer `json:"home"`
	Away []LineupPlayer `json:"away"`
}

func (l Lineups) Empty() bool {
	return len(l.Home) == 0 && len(l.Away) == 0
}

// Match is one normalized sporting event. Mutable fields (scores, status,
// lineups) are overwritten on every ingestion pass; CreatedAt is set on first
// write only.
type Match struct {
	Key        Key
	ExternalID string
	Season     string
	Venue      string
	Status     string
	HomeScore  *int
	AwayScore  *int
	HomeLogo   string
	AwayLogo   string
	Lineups    Lineups
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m Match) Validate() error {
	if err := m.Key.Validate(); err != nil {
		return err
	}
	switch m.Status {
	case StatusScheduled, StatusLive, StatusFinished:
	default:
		return fmt.Errorf("invalid status %q", m.Status)
	}
	return nil
}

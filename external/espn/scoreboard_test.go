package espn

import (
	"encoding/json"
	"testing"
)

func scoreboardFixtureEvent() scoreboardEvent {
	return scoreboardEvent{
		ID:     "401234",
		Date:   "2025-03-15T15:00Z",
		Season: eventSeason{Year: 2024},
		Status: eventStatus{Type: eventStatusType{
			Name:  "STATUS_IN_PROGRESS",
			State: "in",
		}},
		Competitions: []eventCompetition{{
			Venue: eventVenue{FullName: "Emirates Stadium"},
			Competitors: []eventCompetitor{
				{
					HomeAway: "home",
					Score:    json.RawMessage(`"2"`),
					Team:     eventTeam{DisplayName: "Arsenal", Logo: "https://cdn.example/arsenal.png"},
				},
				{
					HomeAway: "away",
					Score:    json.RawMessage(`"1"`),
					Team:     eventTeam{DisplayName: "Chelsea", Logo: "https://cdn.example/chelsea.png"},
				},
			},
		}},
	}
}

func TestMapScoreboardEvent(t *testing.T) {
	t.Parallel()

	mapped, ok := mapScoreboardEvent("eng.1", scoreboardFixtureEvent())
	if !ok {
		t.Fatalf("expected event to map")
	}

	if mapped.ExternalID != "401234" {
		t.Fatalf("unexpected external id: %q", mapped.ExternalID)
	}
	if mapped.HomeTeam != "Arsenal" || mapped.AwayTeam != "Chelsea" {
		t.Fatalf("unexpected sides: %q vs %q", mapped.HomeTeam, mapped.AwayTeam)
	}
	if mapped.HomeScore == nil || *mapped.HomeScore != 2 {
		t.Fatalf("unexpected home score: %+v", mapped.HomeScore)
	}
	if mapped.AwayScore == nil || *mapped.AwayScore != 1 {
		t.Fatalf("unexpected away score: %+v", mapped.AwayScore)
	}
	if !mapped.KickoffParsed {
		t.Fatalf("expected kickoff to parse")
	}
	if mapped.Season != "2024/2025" {
		t.Fatalf("unexpected season label: %q", mapped.Season)
	}
	if mapped.Venue != "Emirates Stadium" {
		t.Fatalf("unexpected venue: %q", mapped.Venue)
	}
	if mapped.StatusTypeName != "STATUS_IN_PROGRESS" || mapped.StatusState != "in" {
		t.Fatalf("unexpected status fields: %q %q", mapped.StatusTypeName, mapped.StatusState)
	}
}

func TestMapScoreboardEvent_SidesResolvedByDesignatorOrder(t *testing.T) {
	t.Parallel()

	event := scoreboardFixtureEvent()
	competitors := event.Competitions[0].Competitors
	competitors[0], competitors[1] = competitors[1], competitors[0]

	mapped, ok := mapScoreboardEvent("eng.1", event)
	if !ok {
		t.Fatalf("expected event to map")
	}
	if mapped.HomeTeam != "Arsenal" || mapped.AwayTeam != "Chelsea" {
		t.Fatalf("sides must follow homeAway designators, got %q vs %q", mapped.HomeTeam, mapped.AwayTeam)
	}
}

func TestMapScoreboardEvent_MissingDesignatorDropsEvent(t *testing.T) {
	t.Parallel()

	event := scoreboardFixtureEvent()
	event.Competitions[0].Competitors[0].HomeAway = ""

	if _, ok := mapScoreboardEvent("eng.1", event); ok {
		t.Fatalf("expected event without home designator to be dropped")
	}
}

func TestMapScoreboardEvent_UnparseableKickoff(t *testing.T) {
	t.Parallel()

	event := scoreboardFixtureEvent()
	event.Date = "not-a-date"

	mapped, ok := mapScoreboardEvent("eng.1", event)
	if !ok {
		t.Fatalf("expected event to map")
	}
	if mapped.KickoffParsed {
		t.Fatalf("expected kickoff parse failure to be flagged")
	}
}

func TestParseScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "quoted number", raw: `"3"`, want: intPtr(3)},
		{name: "bare number", raw: `3`, want: intPtr(3)},
		{name: "zero", raw: `"0"`, want: intPtr(0)},
		{name: "null", raw: `null`, want: nil},
		{name: "empty string", raw: `""`, want: nil},
		{name: "non numeric", raw: `"TBD"`, want: nil},
		{name: "missing", raw: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseScore([]byte(tt.raw))
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseScore(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("parseScore(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestSeasonLabel(t *testing.T) {
	t.Parallel()

	if got := seasonLabel(2024); got != "2024/2025" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := seasonLabel(0); got != "" {
		t.Fatalf("expected empty label for missing year, got %q", got)
	}
}

func intPtr(v int) *int { return &v }

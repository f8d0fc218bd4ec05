package espn

import "testing"

func starterAthlete(name, jersey, position string) boxscoreAthlete {
	return boxscoreAthlete{Athlete: athleteInfo{
		DisplayName: name,
		Jersey:      jersey,
		Position:    athletePosition{Abbreviation: position},
	}}
}

func TestExtractLineups_BoxscoreStarters(t *testing.T) {
	t.Parallel()

	envelope := summaryEnvelope{
		Boxscore: summaryBoxscore{Players: []boxscoreTeam{
			{Team: teamRef{ID: "359"}, Statistics: []boxscoreStatGroup{
				{Name: "Substitutes", Athletes: []boxscoreAthlete{starterAthlete("Bench Player", "20", "M")}},
				{Name: "Starters", Athletes: []boxscoreAthlete{
					starterAthlete("David Raya", "22", "G"),
					starterAthlete("Declan Rice", "41", "M"),
				}},
			}},
			{Team: teamRef{ID: "363"}, Statistics: []boxscoreStatGroup{
				{Name: "starters", Athletes: []boxscoreAthlete{
					starterAthlete("Robert Sanchez", "1", "G"),
				}},
			}},
		}},
		Rosters: []summaryRoster{
			{HomeAway: "home", Team: teamRef{ID: "359"}},
			{HomeAway: "away", Team: teamRef{ID: "363"}},
		},
	}

	lineups := extractLineups(envelope)
	if len(lineups.Home) != 2 {
		t.Fatalf("unexpected home lineup size: %d", len(lineups.Home))
	}
	if len(lineups.Away) != 1 {
		t.Fatalf("unexpected away lineup size: %d", len(lineups.Away))
	}
	if lineups.Home[0].Name != "David Raya" || lineups.Home[0].Jersey != "22" || lineups.Home[0].Position != "G" {
		t.Fatalf("unexpected home starter: %+v", lineups.Home[0])
	}
}

func TestExtractLineups_BoxscoreAwayListedFirst(t *testing.T) {
	t.Parallel()

	envelope := summaryEnvelope{
		Boxscore: summaryBoxscore{Players: []boxscoreTeam{
			{Team: teamRef{ID: "364"}, Statistics: []boxscoreStatGroup{
				{Name: "Starters", Athletes: []boxscoreAthlete{
					starterAthlete("Alisson", "1", "G"),
				}},
			}},
			{Team: teamRef{ID: "368"}, Statistics: []boxscoreStatGroup{
				{Name: "Starters", Athletes: []boxscoreAthlete{
					starterAthlete("Jordan Pickford", "1", "G"),
				}},
			}},
		}},
		Rosters: []summaryRoster{
			{HomeAway: "away", Team: teamRef{ID: "364"}},
			{HomeAway: "home", Team: teamRef{ID: "368"}},
		},
	}

	lineups := extractLineups(envelope)
	if len(lineups.Home) != 1 || lineups.Home[0].Name != "Jordan Pickford" {
		t.Fatalf("unexpected home lineup: %+v", lineups.Home)
	}
	if len(lineups.Away) != 1 || lineups.Away[0].Name != "Alisson" {
		t.Fatalf("unexpected away lineup: %+v", lineups.Away)
	}
}

func TestExtractLineups_BoxscoreTeamWithoutDesignator(t *testing.T) {
	t.Parallel()

	envelope := summaryEnvelope{
		Boxscore: summaryBoxscore{Players: []boxscoreTeam{
			{Team: teamRef{ID: "359"}, Statistics: []boxscoreStatGroup{
				{Name: "Starters", Athletes: []boxscoreAthlete{
					starterAthlete("David Raya", "22", "G"),
				}},
			}},
			{Team: teamRef{ID: "999"}, Statistics: []boxscoreStatGroup{
				{Name: "Starters", Athletes: []boxscoreAthlete{
					starterAthlete("Mystery Keeper", "1", "G"),
				}},
			}},
		}},
		Rosters: []summaryRoster{
			{HomeAway: "home", Team: teamRef{ID: "359"}},
		},
	}

	lineups := extractLineups(envelope)
	if len(lineups.Home) != 1 || lineups.Home[0].Name != "David Raya" {
		t.Fatalf("unexpected home lineup: %+v", lineups.Home)
	}
	if len(lineups.Away) != 0 {
		t.Fatalf("team without a designator must not be assigned a side: %+v", lineups.Away)
	}
}

func TestExtractLineups_RosterFallback(t *testing.T) {
	t.Parallel()

	envelope := summaryEnvelope{
		Rosters: []summaryRoster{
			{HomeAway: "home", Roster: []rosterEntry{
				{Starter: true, Athlete: athleteInfo{DisplayName: "Ederson", Jersey: "31", Position: athletePosition{Abbreviation: "G"}}},
				{Starter: false, Athlete: athleteInfo{DisplayName: "Substitute"}},
			}},
			{HomeAway: "away", Roster: []rosterEntry{
				{Starter: true, Athlete: athleteInfo{DisplayName: "Alisson", Jersey: "1", Position: athletePosition{Abbreviation: "G"}}},
			}},
		},
	}

	lineups := extractLineups(envelope)
	if len(lineups.Home) != 1 || lineups.Home[0].Name != "Ederson" {
		t.Fatalf("unexpected home lineup: %+v", lineups.Home)
	}
	if len(lineups.Away) != 1 || lineups.Away[0].Name != "Alisson" {
		t.Fatalf("unexpected away lineup: %+v", lineups.Away)
	}
}

func TestExtractLineups_BoxscorePreferredOverRoster(t *testing.T) {
	t.Parallel()

	envelope := summaryEnvelope{
		Boxscore: summaryBoxscore{Players: []boxscoreTeam{
			{Team: teamRef{ID: "359"}, Statistics: []boxscoreStatGroup{
				{Name: "Starters", Athletes: []boxscoreAthlete{starterAthlete("Boxscore Player", "7", "F")}},
			}},
		}},
		Rosters: []summaryRoster{
			{HomeAway: "home", Team: teamRef{ID: "359"}, Roster: []rosterEntry{
				{Starter: true, Athlete: athleteInfo{DisplayName: "Roster Player"}},
			}},
		},
	}

	lineups := extractLineups(envelope)
	if len(lineups.Home) != 1 || lineups.Home[0].Name != "Boxscore Player" {
		t.Fatalf("expected boxscore tier to win: %+v", lineups.Home)
	}
}

func TestExtractLineups_Empty(t *testing.T) {
	t.Parallel()

	if got := extractLineups(summaryEnvelope{}); !got.Empty() {
		t.Fatalf("expected empty lineups, got %+v", got)
	}
}

func TestMapLineupPlayer_Defaults(t *testing.T) {
	t.Parallel()

	player := mapLineupPlayer(athleteInfo{}, nil)
	if player.Name != "Unknown" {
		t.Fatalf("unexpected default name: %q", player.Name)
	}
	if player.Position != "N/A" {
		t.Fatalf("unexpected default position: %q", player.Position)
	}
	if player.Jersey != "" {
		t.Fatalf("unexpected default jersey: %q", player.Jersey)
	}
}

func TestExtractRating(t *testing.T) {
	t.Parallel()

	if got := extractRating([]string{"7.2", "1", "0"}); got != nil {
		t.Fatalf("plain numbers must not yield a rating, got %v", *got)
	}
	if got := extractRating(nil); got != nil {
		t.Fatalf("expected nil rating for empty stats")
	}
}

package espn

import "encoding/json"

type scoreboardEnvelope struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	Season       eventSeason        `json:"season"`
	Status       eventStatus        `json:"status"`
	Competitions []eventCompetition `json:"competitions"`
}

type eventSeason struct {
	Year int `json:"year"`
}

type eventStatus struct {
	Type eventStatusType `json:"type"`
}

type eventStatusType struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type eventCompetition struct {
	Venue       eventVenue        `json:"venue"`
	Competitors []eventCompetitor `json:"competitors"`
}

type eventVenue struct {
	FullName string `json:"fullName"`
}

type eventCompetitor struct {
	HomeAway string          `json:"homeAway"`
	Score    json.RawMessage `json:"score"`
	Team     eventTeam       `json:"team"`
}

type eventTeam struct {
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
}

type summaryEnvelope struct {
	Boxscore summaryBoxscore `json:"boxscore"`
	Rosters  []summaryRoster `json:"rosters"`
}

type summaryBoxscore struct {
	Players []boxscoreTeam `json:"players"`
}

type boxscoreTeam struct {
	Team       teamRef             `json:"team"`
	Statistics []boxscoreStatGroup `json:"statistics"`
}

type teamRef struct {
	ID string `json:"id"`
}

type boxscoreStatGroup struct {
	Name     string            `json:"name"`
	Athletes []boxscoreAthlete `json:"athletes"`
}

type boxscoreAthlete struct {
	Athlete athleteInfo `json:"athlete"`
	Stats   []string    `json:"stats"`
}

type summaryRoster struct {
	HomeAway string        `json:"homeAway"`
	Team     teamRef       `json:"team"`
	Roster   []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Starter bool        `json:"starter"`
	Athlete athleteInfo `json:"athlete"`
}

type athleteInfo struct {
	DisplayName string          `json:"displayName"`
	Name        string          `json:"name"`
	Jersey      string          `json:"jersey"`
	Position    athletePosition `json:"position"`
	Headshot    athleteHeadshot `json:"headshot"`
}

type athletePosition struct {
	Abbreviation string `json:"abbreviation"`
}

type athleteHeadshot struct {
	Href string `json:"href"`
}

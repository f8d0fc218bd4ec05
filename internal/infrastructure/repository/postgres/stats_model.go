package postgres

import (
	"time"

	"github.com/footballhub/matchday/internal/domain/stats"
)

type playerSeasonTableModel struct {
	ID          int64     `db:"id"`
	Player      string    `db:"player"`
	Team        string    `db:"team"`
	Season      string    `db:"season"`
	Goals       int       `db:"goals"`
	Assists     int       `db:"assists"`
	Appearances int       `db:"appearances"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m playerSeasonTableModel) toDomain() stats.PlayerSeason {
	return stats.PlayerSeason{
		Player:      m.Player,
		Team:        m.Team,
		Season:      m.Season,
		Goals:       m.Goals,
		Assists:     m.Assists,
		Appearances: m.Appearances,
	}
}

type playerSeasonInsertModel struct {
	Player      string `db:"player"`
	Team        string `db:"team"`
	Season      string `db:"season"`
	Goals       int    `db:"goals"`
	Assists     int    `db:"assists"`
	Appearances int    `db:"appearances"`
}

func newPlayerSeasonInsertModel(row stats.PlayerSeason) playerSeasonInsertModel {
	return playerSeasonInsertModel{
		Player:      row.Player,
		Team:        row.Team,
		Season:      row.Season,
		Goals:       row.Goals,
		Assists:     row.Assists,
		Appearances: row.Appearances,
	}
}

type teamSeasonTableModel struct {
	ID           int64     `db:"id"`
	Team         string    `db:"team"`
	Season       string    `db:"season"`
	Wins         int       `db:"wins"`
	Draws        int       `db:"draws"`
	Losses       int       `db:"losses"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m teamSeasonTableModel) toDomain() stats.TeamSeason {
	return stats.TeamSeason{
		Team:         m.Team,
		Season:       m.Season,
		Wins:         m.Wins,
		Draws:        m.Draws,
		Losses:       m.Losses,
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
	}
}

type teamSeasonInsertModel struct {
	Team         string `db:"team"`
	Season       string `db:"season"`
	Wins         int    `db:"wins"`
	Draws        int    `db:"draws"`
	Losses       int    `db:"losses"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
}

func newTeamSeasonInsertModel(row stats.TeamSeason) teamSeasonInsertModel {
	return teamSeasonInsertModel{
		Team:         row.Team,
		Season:       row.Season,
		Wins:         row.Wins,
		Draws:        row.Draws,
		Losses:       row.Losses,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
	}
}

package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/footballhub/matchday/internal/domain/match"
)

type matchTableModel struct {
	ID          int64         `db:"id"`
	KickoffAt   time.Time     `db:"kickoff_at"`
	HomeTeam    string        `db:"home_team"`
	AwayTeam    string        `db:"away_team"`
	Competition string        `db:"competition"`
	ExternalID  string        `db:"external_id"`
	Season      string        `db:"season"`
	Venue       string        `db:"venue"`
	Status      string        `db:"status"`
	HomeScore   sql.NullInt64 `db:"home_score"`
	AwayScore   sql.NullInt64 `db:"away_score"`
	HomeLogo    string        `db:"home_logo"`
	AwayLogo    string        `db:"away_logo"`
	Lineups     []byte        `db:"lineups"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	var lineups match.Lineups
	if len(m.Lineups) > 0 {
		if err := sonic.Unmarshal(m.Lineups, &lineups); err != nil {
			return match.Match{}, fmt.Errorf("decode lineups for %s vs %s: %w", m.HomeTeam, m.AwayTeam, err)
		}
	}

	return match.Match{
		Key: match.Key{
			KickoffAt:   m.KickoffAt.UTC(),
			HomeTeam:    m.HomeTeam,
			AwayTeam:    m.AwayTeam,
			Competition: m.Competition,
		},
		ExternalID: m.ExternalID,
		Season:     m.Season,
		Venue:      m.Venue,
		Status:     m.Status,
		HomeScore:  nullToIntPtr(m.HomeScore),
		AwayScore:  nullToIntPtr(m.AwayScore),
		HomeLogo:   m.HomeLogo,
		AwayLogo:   m.AwayLogo,
		Lineups:    lineups,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}, nil
}

type matchInsertModel struct {
	KickoffAt   time.Time     `db:"kickoff_at"`
	HomeTeam    string        `db:"home_team"`
	AwayTeam    string        `db:"away_team"`
	Competition string        `db:"competition"`
	ExternalID  string        `db:"external_id"`
	Season      string        `db:"season"`
	Venue       string        `db:"venue"`
	Status      string        `db:"status"`
	HomeScore   sql.NullInt64 `db:"home_score"`
	AwayScore   sql.NullInt64 `db:"away_score"`
	HomeLogo    string        `db:"home_logo"`
	AwayLogo    string        `db:"away_logo"`
	Lineups     string        `db:"lineups"`
}

func newMatchInsertModel(item match.Match) (matchInsertModel, error) {
	lineups, err := sonic.Marshal(item.Lineups)
	if err != nil {
		return matchInsertModel{}, fmt.Errorf("encode lineups: %w", err)
	}

	return matchInsertModel{
		KickoffAt:   item.Key.KickoffAt.UTC(),
		HomeTeam:    item.Key.HomeTeam,
		AwayTeam:    item.Key.AwayTeam,
		Competition: item.Key.Competition,
		ExternalID:  item.ExternalID,
		Season:      item.Season,
		Venue:       item.Venue,
		Status:      item.Status,
		HomeScore:   intPtrToNull(item.HomeScore),
		AwayScore:   intPtrToNull(item.AwayScore),
		HomeLogo:    item.HomeLogo,
		AwayLogo:    item.AwayLogo,
		Lineups:     string(lineups),
	}, nil
}

func intPtrToNull(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullToIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

// Package model provides domain models and DTOs for the match module.
package model

import "time"

// Competition names a match's competition.
type Competition string

const (
	CompetitionLeague   Competition = "League"
	CompetitionCup      Competition = "Cup"
	CompetitionSupercup Competition = "Supercup"
)

// Valid reports whether c is a known competition.
func (c Competition) Valid() bool {
	switch c {
	case CompetitionLeague, CompetitionCup, CompetitionSupercup:
		return true
	}
	return false
}

// Match is a scheduled fixture. Scores stay nil until it is played.
type Match struct {
	ID          int64       `gorm:"primaryKey;column:id" json:"id"`
	SeasonID    int64       `gorm:"column:season_id;not null;index" json:"season_id"`
	HomeTeamID  int64       `gorm:"column:home_team_id;not null" json:"home_team_id"`
	AwayTeamID  int64       `gorm:"column:away_team_id;not null" json:"away_team_id"`
	ScheduledAt time.Time   `gorm:"column:scheduled_at;not null" json:"scheduled_at"`
	HomeScore   *int        `gorm:"column:home_score" json:"home_score"`
	AwayScore   *int        `gorm:"column:away_score" json:"away_score"`
	Competition Competition `gorm:"column:competition;type:varchar(16);not null" json:"competition"`
	Round       string      `gorm:"column:round;not null" json:"round"`
	Week        *int        `gorm:"column:week" json:"week"`
	CupGroup    string      `gorm:"column:cup_group;not null" json:"cup_group"`
	CreatedAt   time.Time   `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time   `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// Played reports whether both scores are recorded.
func (m Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// CountsForLeague reports whether the match feeds the league table.
func (m Match) CountsForLeague() bool {
	return m.Competition == CompetitionLeague
}

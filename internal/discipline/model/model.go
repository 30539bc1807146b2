// Package model provides domain models and DTOs for the discipline module.
package model

import "time"

// EventType is the kind of a match event.
type EventType string

const (
	EventYellowCard EventType = "yellow_card"
	EventRedCard    EventType = "red_card"
	EventGoal       EventType = "goal"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventYellowCard, EventRedCard, EventGoal:
		return true
	}
	return false
}

// MatchEvent is something that happened to a player during a match.
type MatchEvent struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	MatchID   int64     `gorm:"column:match_id;not null;index" json:"match_id"`
	PlayerID  int64     `gorm:"column:player_id;not null" json:"player_id"`
	EventType EventType `gorm:"column:event_type;type:varchar(32);not null" json:"event_type"`
	Minute    int       `gorm:"column:minute;not null" json:"minute"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (MatchEvent) TableName() string {
	return "match_events"
}

// Suspension bars a player for a number of matches.
type Suspension struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	PlayerID  int64     `gorm:"column:player_id;not null" json:"player_id"`
	SeasonID  int64     `gorm:"column:season_id;not null;index" json:"season_id"`
	IssuedOn  time.Time `gorm:"column:issued_on;type:date;not null" json:"issued_on"`
	Matches   int       `gorm:"column:matches;not null" json:"matches"`
	Reason    string    `gorm:"column:reason;not null" json:"reason"`
	Active    bool      `gorm:"column:active;not null" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Suspension) TableName() string {
	return "suspensions"
}

// PunishmentType is a catalogue entry of team sanctions.
type PunishmentType struct {
	ID             int64  `gorm:"primaryKey;column:id" json:"id"`
	Name           string `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	PointsDeducted int    `gorm:"column:points_deducted;not null" json:"points_deducted"`
}

// TableName specifies the table name for GORM.
func (PunishmentType) TableName() string {
	return "punishment_types"
}

// TeamPunishment is a sanction applied to a team.
type TeamPunishment struct {
	ID               int64     `gorm:"primaryKey;column:id" json:"id"`
	TeamID           int64     `gorm:"column:team_id;not null;index" json:"team_id"`
	PunishmentTypeID int64     `gorm:"column:punishment_type_id;not null" json:"punishment_type_id"`
	IssuedOn         time.Time `gorm:"column:issued_on;type:date;not null" json:"issued_on"`
	Description      string    `gorm:"column:description;not null" json:"description"`
	Quantity         int       `gorm:"column:quantity;not null" json:"quantity"`
	PlayerID         *int64    `gorm:"column:player_id" json:"player_id,omitempty"`
	MatchID          *int64    `gorm:"column:match_id" json:"match_id,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamPunishment) TableName() string {
	return "team_punishments"
}

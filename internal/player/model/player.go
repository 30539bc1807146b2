// Package model provides domain models and DTOs for the player module.
package model

import (
	"errors"
	"time"
)

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrTeamNotFound indicates the referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidName indicates an empty player name.
	ErrInvalidName = errors.New("invalid player name")
)

// Player is a registered squad member.
type Player struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	TeamID    int64     `gorm:"column:team_id;not null;index" json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	PhotoURL  string    `gorm:"column:photo_url;not null" json:"photo_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// PlayerRequest is the body of POST /players and PUT /players/:id.
type PlayerRequest struct {
	TeamID   int64  `json:"team_id" binding:"required,min=1"`
	Name     string `json:"name" binding:"required,max=128"`
	PhotoURL string `json:"photo_url"`
}

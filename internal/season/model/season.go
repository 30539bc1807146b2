// Package model provides domain models and DTOs for the season module.
package model

import "time"

// Season is one league campaign.
type Season struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Label       string    `gorm:"column:label;type:varchar(64);not null;uniqueIndex" json:"label"`
	IsCurrent   bool      `gorm:"column:is_current;not null" json:"is_current"`
	HasGroupCup bool      `gorm:"column:has_group_cup;not null" json:"has_group_cup"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Season) TableName() string {
	return "seasons"
}

// CreateSeasonRequest is the body of POST /seasons.
type CreateSeasonRequest struct {
	Label       string `json:"label" binding:"required,max=64"`
	IsCurrent   bool   `json:"is_current"`
	HasGroupCup bool   `json:"has_group_cup"`
}

// UpdateSeasonRequest is the body of PUT /seasons/:id. Nil fields are kept.
type UpdateSeasonRequest struct {
	Label       *string `json:"label" binding:"omitempty,max=64"`
	IsCurrent   *bool   `json:"is_current"`
	HasGroupCup *bool   `json:"has_group_cup"`
}

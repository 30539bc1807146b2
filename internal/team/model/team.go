// Package model provides domain models and DTOs for the team module.
package model

import "time"

// Team is a club registered for one season.
type Team struct {
	ID             int64      `gorm:"primaryKey;column:id" json:"id"`
	SeasonID       int64      `gorm:"column:season_id;not null;uniqueIndex:idx_teams_season_name" json:"season_id"`
	Name           string     `gorm:"column:name;type:varchar(128);not null;uniqueIndex:idx_teams_season_name" json:"name"`
	LogoURL        string     `gorm:"column:logo_url;not null" json:"logo_url"`
	RosterImageURL string     `gorm:"column:roster_image_url;not null" json:"roster_image_url"`
	Stadium        string     `gorm:"column:stadium;not null" json:"stadium"`
	FoundedOn      *time.Time `gorm:"column:founded_on;type:date" json:"founded_on,omitempty"`
	HomeKit        string     `gorm:"column:home_kit;not null" json:"home_kit"`
	AwayKit        string     `gorm:"column:away_kit;not null" json:"away_kit"`
	Excluded       bool       `gorm:"column:excluded;not null" json:"excluded"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

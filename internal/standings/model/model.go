// Package model provides domain models and DTOs for the standings module.
package model

import (
	"errors"

	"github.com/festy23/veterans_league/internal/standings/ranker"
)

var (
	// ErrSeasonNotFound indicates that the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrInvalidSort indicates an unknown sort key or direction.
	ErrInvalidSort = errors.New("invalid sort")
)

// Standing is a materialized table row.
type Standing struct {
	SeasonID     int64 `gorm:"primaryKey;column:season_id;autoIncrement:false" json:"season_id"`
	TeamID       int64 `gorm:"primaryKey;column:team_id;autoIncrement:false" json:"team_id"`
	Played       int   `gorm:"column:played;not null" json:"played"`
	Wins         int   `gorm:"column:wins;not null" json:"wins"`
	Draws        int   `gorm:"column:draws;not null" json:"draws"`
	Losses       int   `gorm:"column:losses;not null" json:"losses"`
	GoalsFor     int   `gorm:"column:goals_for;not null" json:"goals_for"`
	GoalsAgainst int   `gorm:"column:goals_against;not null" json:"goals_against"`
	Points       int   `gorm:"column:points;not null" json:"points"`
}

// TableName specifies the table name for GORM.
func (Standing) TableName() string {
	return "standings"
}

// TableRow is a standings row joined with its team.
type TableRow struct {
	Position       int    `json:"position" gorm:"-"`
	TeamID         int64  `json:"team_id" gorm:"column:team_id"`
	TeamName       string `json:"team_name" gorm:"column:team_name"`
	LogoURL        string `json:"logo_url" gorm:"column:logo_url"`
	Excluded       bool   `json:"excluded" gorm:"column:excluded"`
	Played         int    `json:"played" gorm:"column:played"`
	Wins           int    `json:"wins" gorm:"column:wins"`
	Draws          int    `json:"draws" gorm:"column:draws"`
	Losses         int    `json:"losses" gorm:"column:losses"`
	GoalsFor       int    `json:"goals_for" gorm:"column:goals_for"`
	GoalsAgainst   int    `json:"goals_against" gorm:"column:goals_against"`
	GoalDifference int    `json:"goal_difference" gorm:"-"`
	Points         int    `json:"points" gorm:"column:points"`
}

// RankStats implements ranker.Ranked.
func (r TableRow) RankStats() ranker.Stats {
	return ranker.Stats{
		Points:       r.Points,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Played:       r.Played,
		Wins:         r.Wins,
		Draws:        r.Draws,
		Losses:       r.Losses,
		Excluded:     r.Excluded,
	}
}

// Table is the response of GET /standings.
type Table struct {
	SeasonID  int64      `json:"season_id"`
	Sort      string     `json:"sort"`
	Direction string     `json:"direction"`
	Rows      []TableRow `json:"rows"`
}

// Champion is the winner of a finished season.
type Champion struct {
	SeasonID    int64  `json:"season_id"`
	SeasonLabel string `json:"season_label"`
	TeamID      int64  `json:"team_id"`
	TeamName    string `json:"team_name"`
	LogoURL     string `json:"logo_url"`
	Points      int    `json:"points"`
}

// SeasonRef is the part of a season the standings module reads.
type SeasonRef struct {
	ID        int64  `gorm:"column:id"`
	Label     string `gorm:"column:label"`
	IsCurrent bool   `gorm:"column:is_current"`
}

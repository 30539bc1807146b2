// Package model provides domain models for the cup module.
package model

import (
	"errors"
	"time"

	"github.com/festy23/veterans_league/internal/standings/ranker"
)

// ErrSeasonNotFound indicates that the requested season does not exist.
var ErrSeasonNotFound = errors.New("season not found")

// Format names how a season's cup is played.
type Format string

const (
	FormatKnockout Format = "knockout"
	FormatGroups   Format = "groups"
)

// CupMatch is a cup or supercup fixture with team names.
type CupMatch struct {
	ID           int64     `json:"id"`
	Competition  string    `json:"competition"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	HomeTeamID   int64     `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   int64     `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	HomeScore    *int      `json:"home_score"`
	AwayScore    *int      `json:"away_score"`
	Round        string    `json:"round"`
	CupGroup     string    `json:"cup_group"`

	HomeTeamExcluded bool `json:"-"`
	AwayTeamExcluded bool `json:"-"`
}

// Played reports whether both scores are recorded.
func (m CupMatch) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// GroupRow is one team's line in a group table.
type GroupRow struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Excluded       bool   `json:"excluded"`
}

// RankStats implements ranker.Ranked.
func (r GroupRow) RankStats() ranker.Stats {
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

// Group is a cup group with its table and fixtures.
type Group struct {
	Name    string     `json:"name"`
	Table   []GroupRow `json:"table"`
	Matches []CupMatch `json:"matches"`
}

// Round is a knockout round in bracket order.
type Round struct {
	Name    string     `json:"name"`
	Matches []CupMatch `json:"matches"`
}

// Cup is the response of GET /cup.
type Cup struct {
	SeasonID int64      `json:"season_id"`
	Format   Format     `json:"format"`
	Groups   []Group    `json:"groups"`
	Rounds   []Round    `json:"rounds"`
	Supercup []CupMatch `json:"supercup"`
}

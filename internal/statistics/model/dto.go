// Package model provides data transfer objects for statistics module.
package model

import "errors"

// ErrSeasonNotFound indicates the requested season does not exist.
var ErrSeasonNotFound = errors.New("season not found")

// PlayerStatistics is one row of the season's player leaderboard.
type PlayerStatistics struct {
	PlayerID    int64  `json:"player_id" gorm:"column:player_id"`
	PlayerName  string `json:"player_name" gorm:"column:player_name"`
	TeamID      int64  `json:"team_id" gorm:"column:team_id"`
	TeamName    string `json:"team_name" gorm:"column:team_name"`
	Goals       int    `json:"goals" gorm:"column:goals"`
	YellowCards int    `json:"yellow_cards" gorm:"column:yellow_cards"`
	RedCards    int    `json:"red_cards" gorm:"column:red_cards"`
}

// ScorersResponse represents response for the scorers leaderboard.
type ScorersResponse struct {
	SeasonID int64              `json:"season_id"`
	Scorers  []PlayerStatistics `json:"scorers"`
	Total    int                `json:"total"`
}

// SeasonStatistics summarises the league matches of a season.
type SeasonStatistics struct {
	TotalMatches         int     `json:"total_matches"`
	PlayedMatches        int     `json:"played_matches"`
	HomeWins             int     `json:"home_wins"`
	AwayWins             int     `json:"away_wins"`
	Draws                int     `json:"draws"`
	TotalGoals           int     `json:"total_goals"`
	AverageGoalsPerMatch float64 `json:"average_goals_per_match"`
	YellowCards          int     `json:"yellow_cards"`
	RedCards             int     `json:"red_cards"`
}

// SeasonStatisticsResponse represents response for season statistics.
type SeasonStatisticsResponse struct {
	SeasonID   int64            `json:"season_id"`
	Statistics SeasonStatistics `json:"statistics"`
}

package model

import "time"

// MatchRequest is the body of POST /matches and PUT /matches/:id.
type MatchRequest struct {
	SeasonID    int64       `json:"season_id" binding:"required,min=1"`
	HomeTeamID  int64       `json:"home_team_id" binding:"required,min=1"`
	AwayTeamID  int64       `json:"away_team_id" binding:"required,min=1"`
	ScheduledAt time.Time   `json:"scheduled_at" binding:"required"`
	HomeScore   *int        `json:"home_score" binding:"omitempty,min=0"`
	AwayScore   *int        `json:"away_score" binding:"omitempty,min=0"`
	Competition Competition `json:"competition"`
	Round       string      `json:"round" binding:"max=64"`
	Week        *int        `json:"week" binding:"omitempty,min=1"`
	CupGroup    string      `json:"cup_group" binding:"max=16"`
}

// ListFilter narrows the calendar.
type ListFilter struct {
	SeasonID    int64
	Week        *int
	Competition Competition
}

// CalendarEntry is a match with team names resolved.
type CalendarEntry struct {
	Match
	HomeTeamName string `json:"home_team_name"`
	AwayTeamName string `json:"away_team_name"`
}

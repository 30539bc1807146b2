package model

import (
	"time"

	"github.com/festy23/veterans_league/internal/discipline/risk"
)

// MatchEventRequest is the body of POST /matches/:id/events.
type MatchEventRequest struct {
	PlayerID  int64     `json:"player_id" binding:"required,min=1"`
	EventType EventType `json:"event_type" binding:"required"`
	Minute    int       `json:"minute" binding:"min=0,max=130"`
}

// SuspensionRequest is the body of POST /suspensions.
type SuspensionRequest struct {
	PlayerID int64     `json:"player_id" binding:"required,min=1"`
	SeasonID int64     `json:"season_id" binding:"required,min=1"`
	IssuedOn time.Time `json:"issued_on" binding:"required"`
	Matches  int       `json:"matches" binding:"min=0"`
	Reason   string    `json:"reason"`
	Active   *bool     `json:"active"`
}

// UpdateSuspensionRequest is the body of PUT /suspensions/:id. Nil fields are kept.
type UpdateSuspensionRequest struct {
	Matches *int    `json:"matches" binding:"omitempty,min=0"`
	Reason  *string `json:"reason"`
	Active  *bool   `json:"active"`
}

// SuspensionFilter narrows the suspensions list.
type SuspensionFilter struct {
	SeasonID int64
	Active   *bool
}

// PunishmentTypeRequest is the body of POST /punishment-types.
type PunishmentTypeRequest struct {
	Name           string `json:"name" binding:"required,max=128"`
	PointsDeducted int    `json:"points_deducted" binding:"min=0"`
}

// TeamPunishmentRequest is the body of POST /team-punishments.
type TeamPunishmentRequest struct {
	TeamID           int64     `json:"team_id" binding:"required,min=1"`
	PunishmentTypeID int64     `json:"punishment_type_id" binding:"required,min=1"`
	IssuedOn         time.Time `json:"issued_on" binding:"required"`
	Description      string    `json:"description"`
	Quantity         int       `json:"quantity" binding:"omitempty,min=1"`
	PlayerID         *int64    `json:"player_id"`
	MatchID          *int64    `json:"match_id"`
}

// SuspensionView is a suspension with the player and team resolved.
type SuspensionView struct {
	Suspension
	PlayerName string `json:"player_name"`
	TeamID     int64  `json:"team_id"`
	TeamName   string `json:"team_name"`
}

// TeamPunishmentView is a team punishment with names resolved.
type TeamPunishmentView struct {
	TeamPunishment
	TeamName       string `json:"team_name"`
	PunishmentName string `json:"punishment_name"`
	PointsDeducted int    `json:"points_deducted"`
}

// Report is the response of GET /discipline.
type Report struct {
	SeasonID    int64                `json:"season_id"`
	Players     []risk.PlayerRisk    `json:"players"`
	Teams       []risk.TeamRisk      `json:"teams"`
	Suspensions []SuspensionView     `json:"suspensions"`
	Punishments []TeamPunishmentView `json:"punishments"`
}

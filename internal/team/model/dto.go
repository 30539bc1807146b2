package model

import "time"

// TeamRequest is the body of POST /teams and PUT /teams/:id.
type TeamRequest struct {
	SeasonID       int64      `json:"season_id" binding:"required,min=1"`
	Name           string     `json:"name" binding:"required,max=128"`
	LogoURL        string     `json:"logo_url"`
	RosterImageURL string     `json:"roster_image_url"`
	Stadium        string     `json:"stadium" binding:"max=128"`
	FoundedOn      *time.Time `json:"founded_on"`
	HomeKit        string     `json:"home_kit" binding:"max=128"`
	AwayKit        string     `json:"away_kit" binding:"max=128"`
	Excluded       bool       `json:"excluded"`
}

// PlayerSummary is a roster entry on the team page.
type PlayerSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Fixture is a match on the team page, seen from the team's side.
type Fixture struct {
	MatchID      int64     `json:"match_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Competition  string    `json:"competition"`
	Week         *int      `json:"week,omitempty"`
	Home         bool      `json:"home"`
	OpponentID   int64     `json:"opponent_id"`
	OpponentName string    `json:"opponent_name"`
	GoalsFor     *int      `json:"goals_for"`
	GoalsAgainst *int      `json:"goals_against"`
}

// TeamDetail is the response of GET /teams/:id.
type TeamDetail struct {
	Team     Team            `json:"team"`
	Players  []PlayerSummary `json:"players"`
	Fixtures []Fixture       `json:"fixtures"`
}

// PointsPoint is the cumulative league points after a week.
type PointsPoint struct {
	Week   int `json:"week"`
	Points int `json:"points"`
}

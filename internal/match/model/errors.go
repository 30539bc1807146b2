package model

import "errors"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrSameTeam indicates a match between a team and itself.
	ErrSameTeam = errors.New("home and away team must differ")
	// ErrInvalidCompetition indicates an unknown competition name.
	ErrInvalidCompetition = errors.New("invalid competition")
	// ErrPartialScore indicates only one side of the score was given.
	ErrPartialScore = errors.New("both scores must be set together")
	// ErrTeamNotInSeason indicates a team that is not registered for the match season.
	ErrTeamNotInSeason = errors.New("team is not registered for this season")
)

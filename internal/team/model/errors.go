package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists indicates a duplicate team name within a season.
	ErrTeamExists = errors.New("team already exists")
	// ErrInvalidTeamName indicates an empty team name.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrSeasonNotFound indicates the referenced season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrNoResults indicates the team has no played league matches to chart.
	ErrNoResults = errors.New("no played league matches")
)

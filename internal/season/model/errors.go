package model

import "errors"

var (
	// ErrSeasonNotFound indicates that the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrNoCurrentSeason indicates that no season is flagged as current.
	ErrNoCurrentSeason = errors.New("no current season")
	// ErrSeasonExists indicates a duplicate season label.
	ErrSeasonExists = errors.New("season already exists")
	// ErrInvalidLabel indicates an empty season label.
	ErrInvalidLabel = errors.New("invalid season label")
)

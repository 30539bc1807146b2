package model

import "errors"

var (
	// ErrEventNotFound indicates that the requested match event does not exist.
	ErrEventNotFound = errors.New("match event not found")
	// ErrInvalidEventType indicates an unknown event type.
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrSuspensionNotFound indicates that the requested suspension does not exist.
	ErrSuspensionNotFound = errors.New("suspension not found")
	// ErrPunishmentTypeExists indicates a duplicate punishment type name.
	ErrPunishmentTypeExists = errors.New("punishment type already exists")
	// ErrPunishmentNotFound indicates that the requested team punishment does not exist.
	ErrPunishmentNotFound = errors.New("team punishment not found")
	// ErrPlayerNotInMatch indicates a player whose team did not play the match.
	ErrPlayerNotInMatch = errors.New("player's team did not play this match")
	// ErrSeasonNotFound indicates that the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrInvalidReference indicates a referenced match, player, team or type that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

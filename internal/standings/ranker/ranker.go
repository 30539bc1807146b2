// Package ranker orders league table rows.
//
// Ordering is layered. Excluded teams always sort last. Among the rest, teams
// that have not played sort after teams that have. Within each band rows are
// compared by the requested key:
//
//   - KeyPoints compares points in the requested direction and breaks ties by
//     goal difference, goals for and matches played, all descending.
//   - Any other key compares that single field in the requested direction.
//   - KeyNone applies the points chain, always descending.
//
// The sort is stable, so rows equal under every rule keep their input order.
package ranker

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSortKey is returned for an unknown sort key name.
var ErrInvalidSortKey = errors.New("invalid sort key")

// ErrInvalidDirection is returned for an unknown direction name.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Stats is the part of a table row the ranker looks at.
type Stats struct {
	Points       int
	GoalsFor     int
	GoalsAgainst int
	Played       int
	Wins         int
	Draws        int
	Losses       int
	Excluded     bool
}

// GoalDifference returns goals for minus goals against.
func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Ranked is implemented by rows that can be ranked.
type Ranked interface {
	RankStats() Stats
}

// SortKey selects the primary comparison field.
type SortKey int

const (
	KeyNone SortKey = iota
	KeyPoints
	KeyWins
	KeyDraws
	KeyLosses
	KeyGoalsFor
	KeyGoalsAgainst
	KeyGoalDifference
	KeyPlayed
)

var keyNames = map[SortKey]string{
	KeyNone:           "",
	KeyPoints:         "points",
	KeyWins:           "wins",
	KeyDraws:          "draws",
	KeyLosses:         "losses",
	KeyGoalsFor:       "goals_for",
	KeyGoalsAgainst:   "goals_against",
	KeyGoalDifference: "goal_difference",
	KeyPlayed:         "played",
}

// field extracts the raw value compared for a single-field key.
var field = map[SortKey]func(Stats) int{
	KeyPoints:         func(s Stats) int { return s.Points },
	KeyWins:           func(s Stats) int { return s.Wins },
	KeyDraws:          func(s Stats) int { return s.Draws },
	KeyLosses:         func(s Stats) int { return s.Losses },
	KeyGoalsFor:       func(s Stats) int { return s.GoalsFor },
	KeyGoalsAgainst:   func(s Stats) int { return s.GoalsAgainst },
	KeyGoalDifference: func(s Stats) int { return s.GoalDifference() },
	KeyPlayed:         func(s Stats) int { return s.Played },
}

func (k SortKey) String() string {
	if name, ok := keyNames[k]; ok {
		if name == "" {
			return "default"
		}
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey parses a key name. The empty string selects KeyNone. Camel
// case aliases such as "goalsFor" and "matchesPlayed" are accepted.
func ParseSortKey(s string) (SortKey, error) {
	name := strings.TrimSpace(s)
	switch strings.ToLower(name) {
	case "":
		return KeyNone, nil
	case "goalsfor":
		return KeyGoalsFor, nil
	case "goalsagainst":
		return KeyGoalsAgainst, nil
	case "goaldifference":
		return KeyGoalDifference, nil
	case "matchesplayed", "matches_played":
		return KeyPlayed, nil
	}
	for k, n := range keyNames {
		if n != "" && n == strings.ToLower(name) {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Direction is the requested sort direction.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// ParseDirection parses "asc" or "desc". The empty string selects Desc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	}
	return Desc, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Compare orders a before b when the result is negative.
func Compare(a, b Stats, key SortKey, dir Direction) int {
	if c := cmp.Compare(band(a), band(b)); c != 0 {
		return c
	}

	switch key {
	case KeyNone:
		return chain(a, b, Desc)
	case KeyPoints:
		return chain(a, b, dir)
	}

	get, ok := field[key]
	if !ok {
		return chain(a, b, Desc)
	}
	return directed(cmp.Compare(get(a), get(b)), dir)
}

// Rank sorts rows in place.
func Rank[T Ranked](rows []T, key SortKey, dir Direction) {
	slices.SortStableFunc(rows, func(a, b T) int {
		return Compare(a.RankStats(), b.RankStats(), key, dir)
	})
}

// band is 0 for active teams with games, 1 for active teams without, 2 for
// excluded teams.
func band(s Stats) int {
	switch {
	case s.Excluded:
		return 2
	case s.Played == 0:
		return 1
	default:
		return 0
	}
}

// chain compares points in dir, then goal difference, goals for and matches
// played descending.
func chain(a, b Stats, dir Direction) int {
	if c := directed(cmp.Compare(a.Points, b.Points), dir); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference(), a.GoalDifference()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	return cmp.Compare(b.Played, a.Played)
}

func directed(c int, dir Direction) int {
	if dir == Desc {
		return -c
	}
	return c
}

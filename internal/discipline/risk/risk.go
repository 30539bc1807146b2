// Package risk derives suspension risk from yellow card counts.
//
// A suspension triggers on every third cumulative yellow card. Players one
// card short of the next trigger are flagged with high severity and a
// warning, players two short with medium severity. Whether a player is
// suspended comes only from the active suspensions passed in; it is never
// inferred from card counts.
package risk

import (
	"cmp"
	"fmt"
	"slices"
)

// SuspensionThreshold is the number of yellow cards per automatic suspension.
const SuspensionThreshold = 3

// Severity grades how close a player is to a suspension.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
	// SeverityReached marks a count that is itself a multiple of the threshold.
	SeverityReached Severity = "reached"
)

// CardEvent is one yellow card, in the order issued.
type CardEvent struct {
	PlayerID int64
	MatchID  int64
	Minute   int
}

// Player identifies a card recipient.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

// Team names a team for the per-team lists.
type Team struct {
	ID   int64
	Name string
}

// Assessment is the classification of a yellow card count.
type Assessment struct {
	YellowCards       int      `json:"yellow_cards"`
	CardsToSuspension int      `json:"cards_to_suspension"`
	Severity          Severity `json:"severity"`
	Label             string   `json:"risk_label"`
	IsWarning         bool     `json:"is_warning"`
}

// PlayerRisk is one player's line in the discipline table.
type PlayerRisk struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     int64  `json:"team_id"`
	Assessment
	Suspended bool `json:"suspended"`
}

// TeamRisk lists a team's suspended and one-card-away players by name.
type TeamRisk struct {
	TeamID    int64    `json:"team_id"`
	TeamName  string   `json:"team_name"`
	Suspended []string `json:"suspended"`
	AtRisk    []string `json:"at_risk"`
}

// Result is the output of Calculate.
type Result struct {
	Players []PlayerRisk `json:"players"`
	Teams   []TeamRisk   `json:"teams"`
}

// CardsToSuspension returns how many more cards trigger the next suspension.
func CardsToSuspension(count int) int {
	if count < 0 {
		count = 0
	}
	return SuspensionThreshold - count%SuspensionThreshold
}

// TriggersSuspension reports whether reaching count cards triggers a suspension.
func TriggersSuspension(count int) bool {
	return count > 0 && count%SuspensionThreshold == 0
}

// Classify grades a yellow card count.
func Classify(count int) Assessment {
	a := Assessment{
		YellowCards:       count,
		CardsToSuspension: CardsToSuspension(count),
		Severity:          SeverityNone,
	}

	switch {
	case count <= 0:
	case TriggersSuspension(count):
		a.Severity = SeverityReached
		a.Label = "suspension threshold reached"
	case a.CardsToSuspension == 1:
		a.Severity = SeverityHigh
		a.Label = "1 card from suspension"
		a.IsWarning = true
	case a.CardsToSuspension == 2:
		a.Severity = SeverityMedium
		a.Label = fmt.Sprintf("%d cards from suspension", a.CardsToSuspension)
	}
	return a
}

// Calculate counts cards per player and classifies them. Players appear when
// they have at least one card or are suspended, ordered by card count
// descending then name. Teams appear when they have a suspended or at-risk
// player, in the order given.
func Calculate(players []Player, teams []Team, events []CardEvent, suspended []int64) Result {
	counts := make(map[int64]int)
	for _, e := range events {
		counts[e.PlayerID]++
	}

	suspendedSet := make(map[int64]bool, len(suspended))
	for _, id := range suspended {
		suspendedSet[id] = true
	}

	known := make(map[int64]bool, len(players))
	result := Result{Players: []PlayerRisk{}, Teams: []TeamRisk{}}
	for _, p := range players {
		known[p.ID] = true
		if counts[p.ID] == 0 && !suspendedSet[p.ID] {
			continue
		}
		result.Players = append(result.Players, PlayerRisk{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			TeamID:     p.TeamID,
			Assessment: Classify(counts[p.ID]),
			Suspended:  suspendedSet[p.ID],
		})
	}

	// Cards for players missing from the roster still count.
	for id, n := range counts {
		if !known[id] {
			result.Players = append(result.Players, PlayerRisk{
				PlayerID:   id,
				Assessment: Classify(n),
				Suspended:  suspendedSet[id],
			})
		}
	}

	slices.SortStableFunc(result.Players, func(a, b PlayerRisk) int {
		if c := cmp.Compare(b.YellowCards, a.YellowCards); c != 0 {
			return c
		}
		if c := cmp.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	byTeam := make(map[int64]*TeamRisk, len(teams))
	teamOrder := make([]int64, 0, len(teams))
	for _, t := range teams {
		if _, dup := byTeam[t.ID]; dup {
			continue
		}
		byTeam[t.ID] = &TeamRisk{TeamID: t.ID, TeamName: t.Name, Suspended: []string{}, AtRisk: []string{}}
		teamOrder = append(teamOrder, t.ID)
	}
	for _, p := range result.Players {
		tr := byTeam[p.TeamID]
		if tr == nil {
			continue
		}
		if p.Suspended {
			tr.Suspended = append(tr.Suspended, p.PlayerName)
		}
		if p.IsWarning {
			tr.AtRisk = append(tr.AtRisk, p.PlayerName)
		}
	}
	for _, id := range teamOrder {
		tr := byTeam[id]
		if len(tr.Suspended) > 0 || len(tr.AtRisk) > 0 {
			result.Teams = append(result.Teams, *tr)
		}
	}

	return result
}

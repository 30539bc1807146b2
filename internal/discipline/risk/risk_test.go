package risk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		count    int
		severity Severity
		label    string
		warning  bool
		toGo     int
	}{
		{0, SeverityNone, "", false, 3},
		{1, SeverityMedium, "2 cards from suspension", false, 2},
		{2, SeverityHigh, "1 card from suspension", true, 1},
		{3, SeverityReached, "suspension threshold reached", false, 3},
		{4, SeverityMedium, "2 cards from suspension", false, 2},
		{5, SeverityHigh, "1 card from suspension", true, 1},
		{6, SeverityReached, "suspension threshold reached", false, 3},
	}

	for _, tt := range tests {
		a := Classify(tt.count)
		assert.Equal(t, tt.count, a.YellowCards)
		assert.Equal(t, tt.severity, a.Severity, "count=%d", tt.count)
		assert.Equal(t, tt.label, a.Label, "count=%d", tt.count)
		assert.Equal(t, tt.warning, a.IsWarning, "count=%d", tt.count)
		assert.Equal(t, tt.toGo, a.CardsToSuspension, "count=%d", tt.count)
	}
}

func TestTriggersSuspension(t *testing.T) {
	for count, want := range map[int]bool{0: false, 1: false, 2: false, 3: true, 6: true, 7: false, 9: true} {
		assert.Equal(t, want, TriggersSuspension(count), "count=%d", count)
	}
}

func TestCardsToSuspension_NegativeCount(t *testing.T) {
	assert.Equal(t, 3, CardsToSuspension(-2))
}

func TestCalculate_ThirdCardScenario(t *testing.T) {
	players := []Player{{ID: 7, Name: "Paco", TeamID: 1}}
	teams := []Team{{ID: 1, Name: "Atletico Veteranos"}}
	events := []CardEvent{
		{PlayerID: 7, MatchID: 10, Minute: 12},
		{PlayerID: 7, MatchID: 11, Minute: 80},
	}

	before := Calculate(players, teams, events, nil)
	require.Len(t, before.Players, 1)
	assert.Equal(t, 2, before.Players[0].YellowCards)
	assert.True(t, before.Players[0].IsWarning)
	require.Len(t, before.Teams, 1)
	assert.Equal(t, []string{"Paco"}, before.Teams[0].AtRisk)

	events = append(events, CardEvent{PlayerID: 7, MatchID: 12, Minute: 33})
	after := Calculate(players, teams, events, nil)
	require.Len(t, after.Players, 1)
	assert.Equal(t, 3, after.Players[0].YellowCards)
	assert.True(t, TriggersSuspension(after.Players[0].YellowCards))
	assert.Equal(t, SeverityReached, after.Players[0].Severity)
	assert.False(t, after.Players[0].Suspended, "suspension comes only from the suspensions list")
	assert.Empty(t, after.Teams)
}

func TestCalculate(t *testing.T) {
	players := []Player{
		{ID: 1, Name: "Alonso", TeamID: 10},
		{ID: 2, Name: "Benito", TeamID: 10},
		{ID: 3, Name: "Carlos", TeamID: 20},
		{ID: 4, Name: "Dani", TeamID: 20},
		{ID: 5, Name: "Eloy", TeamID: 20},
	}
	teams := []Team{{ID: 10, Name: "Rayo"}, {ID: 20, Name: "Betis"}, {ID: 30, Name: "Quiet"}}
	events := []CardEvent{
		{PlayerID: 2, MatchID: 1}, {PlayerID: 2, MatchID: 2},
		{PlayerID: 3, MatchID: 1},
		{PlayerID: 1, MatchID: 3}, {PlayerID: 1, MatchID: 4}, {PlayerID: 1, MatchID: 5},
		{PlayerID: 99, MatchID: 5},
	}

	got := Calculate(players, teams, events, []int64{4, 1})

	type line struct {
		ID        int64
		Cards     int
		Warning   bool
		Suspended bool
	}
	var lines []line
	for _, p := range got.Players {
		lines = append(lines, line{p.PlayerID, p.YellowCards, p.IsWarning, p.Suspended})
	}
	want := []line{
		{1, 3, false, true},
		{2, 2, true, false},
		{99, 1, false, false},
		{3, 1, false, false},
		{4, 0, false, true},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("player lines mismatch (-want +got):\n%s", diff)
	}

	wantTeams := []TeamRisk{
		{TeamID: 10, TeamName: "Rayo", Suspended: []string{"Alonso"}, AtRisk: []string{"Benito"}},
		{TeamID: 20, TeamName: "Betis", Suspended: []string{"Dani"}, AtRisk: []string{}},
	}
	if diff := cmp.Diff(wantTeams, got.Teams); diff != "" {
		t.Errorf("team lists mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(nil, nil, nil, nil)
	assert.NotNil(t, got.Players)
	assert.NotNil(t, got.Teams)
	assert.Empty(t, got.Players)
	assert.Empty(t, got.Teams)
}

func TestCalculate_DuplicateTeamListedOnce(t *testing.T) {
	players := []Player{{ID: 1, Name: "Alonso", TeamID: 10}}
	teams := []Team{{ID: 10, Name: "Rayo"}, {ID: 10, Name: "Rayo"}}

	got := Calculate(players, teams, nil, []int64{1})

	require.Len(t, got.Teams, 1)
	assert.Equal(t, []string{"Alonso"}, got.Teams[0].Suspended)
}

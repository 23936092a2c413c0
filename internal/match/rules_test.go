package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckWin(t *testing.T) {
	byTwo21 := Settings{WinAt: 21, WinByTwo: true, BestOf: 1}
	sudden11 := Settings{WinAt: 11, WinByTwo: false, BestOf: 1}

	tests := []struct {
		name     string
		a, b     int
		settings Settings
		winner   TeamID
		ok       bool
	}{
		{"no score", 0, 0, byTwo21, 0, false},
		{"target with margin", 21, 19, byTwo21, TeamA, true},
		{"target without margin", 21, 20, byTwo21, 0, false},
		{"deuce extends", 25, 23, byTwo21, TeamA, true},
		{"b wins by two", 18, 21, byTwo21, TeamB, true},
		{"margin below target", 15, 2, byTwo21, 0, false},
		{"sudden death ignores margin", 11, 10, sudden11, TeamA, true},
		{"sudden death b", 9, 11, sudden11, TeamB, true},
		{"sudden death below target", 10, 10, sudden11, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, ok := CheckWin(tt.a, tt.b, tt.settings)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestServerSlot_FollowsOwnScoreParity(t *testing.T) {
	team := Team{Players: [2]Player{{ID: "x"}, {ID: "y"}}}

	for score := 0; score < 6; score++ {
		team.Score = score
		assert.Equal(t, score%2, ServerSlot(team), "score %d", score)
	}
	assert.Equal(t, SideRight, SlotSide(0))
	assert.Equal(t, SideLeft, SlotSide(1))
}

func TestServingPlayer_TracksHoldRotation(t *testing.T) {
	s := DefaultState()
	e := New(s, WithLogger(quietLogger()))

	// 0-0: a1 on the right serves.
	assert.Equal(t, "a1", ServingPlayer(e.State()).ID)

	// A holds: a1 moves left and still serves from the odd-score slot.
	e.RegisterPoint(TeamA)
	assert.Equal(t, "a1", ServingPlayer(e.State()).ID)
	assert.Equal(t, "a1", e.State().TeamA.Players[1].ID)

	// Side-out to B at 1-1: B's odd score serves from slot 1.
	e.RegisterPoint(TeamB)
	assert.Equal(t, TeamB, e.State().ServingTeam)
	assert.Equal(t, "b2", ServingPlayer(e.State()).ID)
}

func TestSettings_GamesToClinch(t *testing.T) {
	assert.Equal(t, 1, Settings{BestOf: 1}.GamesToClinch())
	assert.Equal(t, 2, Settings{BestOf: 3}.GamesToClinch())
	assert.Equal(t, 3, Settings{BestOf: 5}.GamesToClinch())
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings.Validate())
	assert.NoError(t, Settings{WinAt: 7, BestOf: 7}.Validate())

	for _, bad := range []Settings{
		{WinAt: 0, BestOf: 1},
		{WinAt: -3, BestOf: 1},
		{WinAt: 11, BestOf: 2},
		{WinAt: 11, BestOf: 0},
		{WinAt: 11, BestOf: -1},
	} {
		err := bad.Validate()
		assert.Error(t, err, "%+v", bad)
		assert.True(t, IsValidationError(err))
	}
}

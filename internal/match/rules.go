package match

// CheckWin decides whether either team has won the current game.
//
// With WinByTwo a team needs at least WinAt points and a lead of two or
// more; otherwise reaching WinAt is enough. Team A is checked first.
func CheckWin(scoreA, scoreB int, settings Settings) (TeamID, bool) {
	if settings.WinByTwo {
		if scoreA >= settings.WinAt && scoreA-scoreB >= 2 {
			return TeamA, true
		}
		if scoreB >= settings.WinAt && scoreB-scoreA >= 2 {
			return TeamB, true
		}
		return 0, false
	}

	if scoreA >= settings.WinAt {
		return TeamA, true
	}
	if scoreB >= settings.WinAt {
		return TeamB, true
	}
	return 0, false
}

// ServerSlot returns the slot serving for a team: 0 (right) on an even
// score, 1 (left) on an odd score.
func ServerSlot(t Team) int {
	return t.Score % 2
}

// SlotSide maps a slot to its court side.
func SlotSide(slot int) Side {
	if slot == 0 {
		return SideRight
	}
	return SideLeft
}

// ServingPlayer returns the player currently in the serving team's server
// slot.
func ServingPlayer(s State) Player {
	t := s.Team(s.ServingTeam)
	return t.Players[ServerSlot(t)]
}

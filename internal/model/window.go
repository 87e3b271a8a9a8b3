package model

import "fmt"

// SatisfiedBySelection reports whether tentatively placing matchup into
// gameslot would keep both of its teams at or under MaxGamesInWindow
// selected games in every WindowSize-day window that includes the
// gameslot's date. It does not mutate the arena.
//
// The check slides a WindowSize-day window across the WindowSize possible
// starting points that include the candidate date, subtracting the date
// that falls off the left edge and adding the date that enters on the
// right, failing the moment a team's count would reach the max. This
// mirrors a sliding accumulator that runs in O(WindowSize) per team
// rather than recounting every window from scratch.
func (wc *WindowConstraint) SatisfiedBySelection(w *World, matchupID MatchupID, gameslotID GameslotID) bool {
	m := w.Matchup(matchupID)
	if m.SelectedGameslot != NoGameslot {
		panic(fmt.Sprintf("SatisfiedBySelection: matchup %d already has a selected gameslot", matchupID))
	}

	candidateDate := w.Gameslot(gameslotID).Date

	for _, teamID := range [2]TeamID{m.TeamA, m.TeamB} {
		team := w.Team(teamID)

		left := candidateDate.AddDate(0, 0, -(wc.WindowSize - 1))
		right := left.AddDate(0, 0, -1)

		count := 0
		for i := 0; i < wc.WindowSize; i++ {
			right = right.AddDate(0, 0, 1)
			count += len(team.GamesByDate[right])
		}
		if count >= wc.MaxGamesInWindow {
			// Equality already means placing the candidate would push the
			// window to MaxGamesInWindow+1.
			return false
		}

		for i := 0; i < wc.WindowSize-1; i++ {
			count -= len(team.GamesByDate[left])
			left = left.AddDate(0, 0, 1)
			right = right.AddDate(0, 0, 1)
			count += len(team.GamesByDate[right])

			if count >= wc.MaxGamesInWindow {
				return false
			}
		}
	}

	return true
}

// WindowConstraintsSatisfied reports whether every window constraint in the world would
// still be satisfied by tentatively placing matchup into gameslot.
func (w *World) WindowConstraintsSatisfied(matchupID MatchupID, gameslotID GameslotID) bool {
	for i := range w.WindowConstraints {
		if !w.WindowConstraints[i].SatisfiedBySelection(w, matchupID, gameslotID) {
			return false
		}
	}
	return true
}

package model

import "fmt"

// SelectGameslot links a matchup to a gameslot, the only sanctioned way to
// make an assignment. It is the exact inverse of DeselectGameslot; every
// backtracking path must pair the two or the arena's counters drift out of
// sync with the actual selections.
func (w *World) SelectGameslot(matchupID MatchupID, gameslotID GameslotID) error {
	m := w.Matchup(matchupID)
	g := w.Gameslot(gameslotID)

	if m.SelectedGameslot != NoGameslot {
		return fmt.Errorf("matchup %d already has a selected gameslot", matchupID)
	}
	if g.SelectedMatchup != NoMatchup {
		return fmt.Errorf("gameslot %d is already selected by another matchup", gameslotID)
	}

	m.SelectedGameslot = gameslotID
	m.SelectedGameslotIsPreferred = g.MatchupsThatPreferThisSlot[matchupID]

	teamA, teamB := w.Team(m.TeamA), w.Team(m.TeamB)
	teamA.GamesByDate[g.Date] = append(teamA.GamesByDate[g.Date], matchupID)
	teamB.GamesByDate[g.Date] = append(teamB.GamesByDate[g.Date], matchupID)

	g.SelectedMatchup = matchupID
	w.Location(g.Location).NumGamesByDate[g.Date]++

	return nil
}

// DeselectGameslot is the exact inverse of SelectGameslot; it fails if the
// matchup currently has no selected gameslot.
func (w *World) DeselectGameslot(matchupID MatchupID) error {
	m := w.Matchup(matchupID)
	if m.SelectedGameslot == NoGameslot {
		return fmt.Errorf("matchup %d has no selected gameslot to deselect", matchupID)
	}

	g := w.Gameslot(m.SelectedGameslot)

	m.SelectedGameslot = NoGameslot
	m.SelectedGameslotIsPreferred = false

	teamA, teamB := w.Team(m.TeamA), w.Team(m.TeamB)
	teamA.GamesByDate[g.Date] = removeMatchup(teamA.GamesByDate[g.Date], matchupID)
	teamB.GamesByDate[g.Date] = removeMatchup(teamB.GamesByDate[g.Date], matchupID)

	g.SelectedMatchup = NoMatchup
	w.Location(g.Location).NumGamesByDate[g.Date]--

	return nil
}

func removeMatchup(list []MatchupID, id MatchupID) []MatchupID {
	for i, m := range list {
		if m == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// SelectPreferredHomeTeam assigns a matchup's preferred home team once,
// updating both teams' counters.
func (w *World) SelectPreferredHomeTeam(matchupID MatchupID, team TeamID) error {
	m := w.Matchup(matchupID)
	if m.PreferredHomeTeam != NoTeam {
		return fmt.Errorf("matchup %d already has a preferred home team", matchupID)
	}
	if team != m.TeamA && team != m.TeamB {
		return fmt.Errorf("preferred home team for matchup %d must be one of its two teams", matchupID)
	}

	m.PreferredHomeTeam = team
	w.Team(team).NumPreferredHomeGames++
	w.Team(m.TeamA).NumMatchupsWithHomePreferenceChosen++
	w.Team(m.TeamB).NumMatchupsWithHomePreferenceChosen++

	return nil
}

// IsIsolated reports whether a matchup's selected gameslot is the only
// selected game at its (date, location).
func (w *World) IsIsolated(matchupID MatchupID) bool {
	m := w.Matchup(matchupID)
	if m.SelectedGameslot == NoGameslot {
		panic("IsIsolated: matchup has no selected gameslot")
	}
	g := w.Gameslot(m.SelectedGameslot)
	return w.Location(g.Location).NumGamesByDate[g.Date] == 1
}

// HomeAwayOrder returns (home, away) for a matchup's selected gameslot: the
// team whose home location matches the slot if unambiguous, else the
// preferred home team.
func (w *World) HomeAwayOrder(matchupID MatchupID) (home, away TeamID) {
	m := w.Matchup(matchupID)
	g := w.Gameslot(m.SelectedGameslot)
	teamA, teamB := w.Team(m.TeamA), w.Team(m.TeamB)

	if g.Location == teamA.HomeLocation && g.Location != teamB.HomeLocation {
		return m.TeamA, m.TeamB
	}
	if g.Location == teamB.HomeLocation && g.Location != teamA.HomeLocation {
		return m.TeamB, m.TeamA
	}

	home = m.PreferredHomeTeam
	if home == m.TeamA {
		return m.TeamA, m.TeamB
	}
	return m.TeamB, m.TeamA
}

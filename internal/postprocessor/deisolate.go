// Package postprocessor applies validity-preserving local improvements
// that run only after Phase 2 has produced a full assignment. Neither
// step here may violate a window constraint, move a preassigned matchup,
// demote a matchup from a preferred slot to a non-preferred one, or
// otherwise break the invariants the solver maintained.
package postprocessor

import "github.com/derekprior/leagueforge/internal/model"

// DeisolateMatchups gathers every matchup that is isolated (the only
// selected game at its (date, location)) and, for
// each one still isolated by the time its turn comes, first tries to push
// it into an existing block; if that fails, tries to pull a game from a
// block of 3+ into the isolated matchup's own block instead.
func DeisolateMatchups(w *model.World) {
	var isolated []model.MatchupID
	for i := range w.Matchups {
		if w.Matchups[i].SelectedGameslot == model.NoGameslot {
			continue
		}
		matchupID := model.MatchupID(i)
		if w.IsIsolated(matchupID) {
			isolated = append(isolated, matchupID)
		}
	}

	for _, matchupID := range isolated {
		if !w.IsIsolated(matchupID) {
			continue // an earlier pull already fixed this one
		}
		if pushIsolated(w, matchupID) {
			continue
		}
		pullIsolated(w, matchupID)
	}
}

// pushIsolated tries to move matchupID off its lonely slot and onto an
// existing block (a (date, location) that, after the move, still has at
// least one other game). It deselects the matchup before scanning
// candidates, which naturally excludes the matchup's own just-vacated
// block, since that block now reads zero games rather than one.
func pushIsolated(w *model.World, matchupID model.MatchupID) bool {
	m := w.Matchup(matchupID)
	if m.IsPreassigned {
		return false
	}

	wasPreferred := m.SelectedGameslotIsPreferred
	original := m.SelectedGameslot
	if err := w.DeselectGameslot(matchupID); err != nil {
		panic("postprocessor: " + err.Error())
	}

	lists := [][]model.GameslotID{m.PreferredGameslots}
	if !wasPreferred {
		lists = append(lists, m.BackupGameslots)
	}

	for _, list := range lists {
		for _, gameslotID := range list {
			g := w.Gameslot(gameslotID)
			if g.SelectedMatchup != model.NoMatchup {
				continue
			}
			if w.Location(g.Location).NumGamesByDate[g.Date] < 1 {
				continue
			}
			if !w.WindowConstraintsSatisfied(matchupID, gameslotID) {
				continue
			}
			if err := w.SelectGameslot(matchupID, gameslotID); err != nil {
				panic("postprocessor: " + err.Error())
			}
			return true
		}
	}

	if err := w.SelectGameslot(matchupID, original); err != nil {
		panic("postprocessor: " + err.Error())
	}
	return false
}

// pullIsolated looks for another non-preassigned matchup, currently in a
// block of 3 or more games, that has an unused candidate slot at the
// isolated matchup's (date, location); moving it there grows the isolated
// matchup's block to 2 without shrinking its own source block below 2. A
// candidate currently on a preferred slot is only pulled onto another
// preferred slot, never demoted onto a backup one.
func pullIsolated(w *model.World, matchupID model.MatchupID) bool {
	home := w.Gameslot(w.Matchup(matchupID).SelectedGameslot)
	isoDate, isoLoc := home.Date, home.Location

	for j := range w.Matchups {
		candidateID := model.MatchupID(j)
		if candidateID == matchupID {
			continue
		}
		other := &w.Matchups[j]
		if other.IsPreassigned || other.SelectedGameslot == model.NoGameslot {
			continue
		}

		sourceSlot := w.Gameslot(other.SelectedGameslot)
		sourceBlockSize := w.Location(sourceSlot.Location).NumGamesByDate[sourceSlot.Date]
		if sourceBlockSize < 3 {
			continue
		}

		destination, destIsPreferred, ok := findOpenSlotAt(w, other, isoDate, isoLoc)
		if !ok {
			continue
		}
		if other.SelectedGameslotIsPreferred && !destIsPreferred {
			continue // would demote candidate off a preferred slot
		}

		originalSlot := other.SelectedGameslot
		if err := w.DeselectGameslot(candidateID); err != nil {
			panic("postprocessor: " + err.Error())
		}
		if !w.WindowConstraintsSatisfied(candidateID, destination) {
			if err := w.SelectGameslot(candidateID, originalSlot); err != nil {
				panic("postprocessor: " + err.Error())
			}
			continue
		}
		if err := w.SelectGameslot(candidateID, destination); err != nil {
			panic("postprocessor: " + err.Error())
		}
		return true
	}
	return false
}

// findOpenSlotAt returns the first open candidate gameslot for m at
// (date, loc), along with whether that slot came from m's preferred list
// (as opposed to its backup list).
func findOpenSlotAt(w *model.World, m *model.Matchup, date model.Date, loc model.LocationID) (model.GameslotID, bool, bool) {
	for _, gameslotID := range m.PreferredGameslots {
		if g := w.Gameslot(gameslotID); g.Date.Equal(date) && g.Location == loc && g.SelectedMatchup == model.NoMatchup {
			return gameslotID, true, true
		}
	}
	for _, gameslotID := range m.BackupGameslots {
		if g := w.Gameslot(gameslotID); g.Date.Equal(date) && g.Location == loc && g.SelectedMatchup == model.NoMatchup {
			return gameslotID, false, true
		}
	}
	return model.NoGameslot, false, false
}

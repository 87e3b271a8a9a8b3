package postprocessor

import (
	"sort"

	"github.com/derekprior/leagueforge/internal/model"
)

// BlockFailure names a (date, location) block that RemoveIntraBlockGaps
// could not rearrange into a gapless run.
type BlockFailure struct {
	Date     model.Date
	Location model.LocationID
}

type dateLocationKey struct {
	date model.Date
	loc  model.LocationID
}

// RemoveIntraBlockGaps closes gaps within each (date, location) block. It
// looks for a starting slot index and a reassignment of
// the block's currently-selected matchups such that the len(matchups)
// consecutive slots starting at that index end up filled and every
// (matchup, slot) pairing is one the matchup actually allows. Blocks that include a preassigned matchup are
// left untouched outright, since a preassigned matchup may never move.
func RemoveIntraBlockGaps(w *model.World) []BlockFailure {
	blocks := make(map[dateLocationKey][]model.GameslotID)
	var order []dateLocationKey
	for i := range w.Gameslots {
		g := &w.Gameslots[i]
		key := dateLocationKey{g.Date, g.Location}
		if _, seen := blocks[key]; !seen {
			order = append(order, key)
		}
		blocks[key] = append(blocks[key], model.GameslotID(i))
	}

	var failures []BlockFailure
	for _, key := range order {
		slots := blocks[key]
		sort.Slice(slots, func(i, j int) bool { return w.Gameslot(slots[i]).Time < w.Gameslot(slots[j]).Time })

		if !fixBlock(w, slots) {
			failures = append(failures, BlockFailure{Date: key.date, Location: key.loc})
		}
	}
	return failures
}

// fixBlock returns true if the block is already gapless or was
// successfully rearranged into one.
func fixBlock(w *model.World, slots []model.GameslotID) bool {
	var matchups []model.MatchupID
	hasPreassigned := false
	for _, gameslotID := range slots {
		matchupID := w.Gameslot(gameslotID).SelectedMatchup
		if matchupID == model.NoMatchup {
			continue
		}
		matchups = append(matchups, matchupID)
		if w.Matchup(matchupID).IsPreassigned {
			hasPreassigned = true
		}
	}

	if len(matchups) == 0 {
		return true
	}
	if hasPreassigned {
		return isGapless(w, slots, matchups)
	}
	if isGapless(w, slots, matchups) {
		return true
	}

	wasPreferred := make(map[model.MatchupID]bool, len(matchups))
	for _, matchupID := range matchups {
		wasPreferred[matchupID] = w.Matchup(matchupID).SelectedGameslotIsPreferred
	}

	allows := func(matchupID model.MatchupID, gameslotID model.GameslotID) bool {
		m := w.Matchup(matchupID)
		if contains(m.PreferredGameslots, gameslotID) {
			return true
		}
		if wasPreferred[matchupID] {
			return false
		}
		return contains(m.BackupGameslots, gameslotID)
	}

	for start := 0; start <= len(slots)-len(matchups); start++ {
		window := slots[start : start+len(matchups)]
		assignment := make([]model.MatchupID, len(window))
		used := make([]bool, len(matchups))
		if searchPermutation(matchups, window, allows, assignment, used, 0) {
			applyAssignment(w, slots, matchups, window, assignment)
			return true
		}
	}
	return false
}

// isGapless reports whether every slot from the first currently-selected
// one through the last is filled, i.e. there's no internal OPEN gap.
func isGapless(w *model.World, slots []model.GameslotID, matchups []model.MatchupID) bool {
	first, last := -1, -1
	for i, gameslotID := range slots {
		if w.Gameslot(gameslotID).SelectedMatchup != model.NoMatchup {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return true
	}
	return last-first+1 == len(matchups)
}

// searchPermutation assigns matchups (in a fixed canonical order) onto
// window's positions one at a time, backtracking on dead ends.
func searchPermutation(matchups []model.MatchupID, window []model.GameslotID, allows func(model.MatchupID, model.GameslotID) bool, assignment []model.MatchupID, used []bool, pos int) bool {
	if pos == len(window) {
		return true
	}
	for i, matchupID := range matchups {
		if used[i] {
			continue
		}
		if !allows(matchupID, window[pos]) {
			continue
		}
		used[i] = true
		assignment[pos] = matchupID
		if searchPermutation(matchups, window, allows, assignment, used, pos+1) {
			return true
		}
		used[i] = false
	}
	return false
}

func applyAssignment(w *model.World, slots []model.GameslotID, matchups []model.MatchupID, window []model.GameslotID, assignment []model.MatchupID) {
	for _, matchupID := range matchups {
		if err := w.DeselectGameslot(matchupID); err != nil {
			panic("postprocessor: " + err.Error())
		}
	}
	for i, gameslotID := range window {
		if err := w.SelectGameslot(assignment[i], gameslotID); err != nil {
			panic("postprocessor: " + err.Error())
		}
	}
}

func contains(list []model.GameslotID, id model.GameslotID) bool {
	for _, g := range list {
		if g == id {
			return true
		}
	}
	return false
}

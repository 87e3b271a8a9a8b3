// Package preprocessor applies preassignments, chooses each matchup's
// preferred home team, and partitions each matchup's candidate gameslots
// into preferred vs. backup. It must run to completion before the solver
// looks at any matchup's candidate lists.
package preprocessor

import (
	"fmt"

	"github.com/derekprior/leagueforge/internal/model"
)

// ApplyPreassignments locks in each preassignment. For each one, it finds
// the first matching unselected matchup and the first matching
// unselected gameslot, checks that no blackout prohibits the pairing, and
// locks both in as preassigned before selecting.
func ApplyPreassignments(w *model.World, preassignments []model.Preassignment) error {
	for _, pa := range preassignments {
		matchupID, ok := findUnselectedMatchup(w, pa)
		if !ok {
			return fmt.Errorf("preassignment %s: no unassigned matchup found for %s vs %s",
				describePreassignment(pa), pa.TeamA, pa.TeamB)
		}

		gameslotID, ok := findUnselectedGameslot(w, pa)
		if !ok {
			return fmt.Errorf("preassignment %s: no unassigned gameslot found", describePreassignment(pa))
		}

		if w.AnyProhibits(matchupID, gameslotID) {
			return fmt.Errorf("preassignment %s: prohibited by a blackout", describePreassignment(pa))
		}

		m := w.Matchup(matchupID)
		g := w.Gameslot(gameslotID)

		m.IsPreassigned = true
		m.PreferredGameslots = []model.GameslotID{gameslotID}
		m.BackupGameslots = nil

		g.IsPreassigned = true
		g.MatchupsThatPreferThisSlot = map[model.MatchupID]bool{matchupID: true}

		if err := w.SelectGameslot(matchupID, gameslotID); err != nil {
			return fmt.Errorf("preassignment %s: %w", describePreassignment(pa), err)
		}
	}
	return nil
}

func findUnselectedMatchup(w *model.World, pa model.Preassignment) (model.MatchupID, bool) {
	teamA, okA := w.TeamByName(pa.Division, pa.TeamA)
	teamB, okB := w.TeamByName(pa.Division, pa.TeamB)
	if !okA || !okB {
		return model.NoMatchup, false
	}

	for i := range w.Matchups {
		m := &w.Matchups[i]
		if m.SelectedGameslot != model.NoGameslot {
			continue
		}
		matches := (m.TeamA == teamA && m.TeamB == teamB) || (m.TeamA == teamB && m.TeamB == teamA)
		if matches {
			return model.MatchupID(i), true
		}
	}
	return model.NoMatchup, false
}

func findUnselectedGameslot(w *model.World, pa model.Preassignment) (model.GameslotID, bool) {
	loc, ok := w.LocationByName(pa.Location)
	if !ok {
		return model.NoGameslot, false
	}

	for i := range w.Gameslots {
		g := &w.Gameslots[i]
		if g.SelectedMatchup != model.NoMatchup {
			continue
		}
		if g.Date.Equal(pa.Date) && g.Time == pa.Time && g.Location == loc {
			return model.GameslotID(i), true
		}
	}
	return model.NoGameslot, false
}

func describePreassignment(pa model.Preassignment) string {
	return fmt.Sprintf("(%s %s at %s: %s vs %s)", pa.Date.Format("1/2/2006"), pa.Division, pa.Location, pa.TeamA, pa.TeamB)
}

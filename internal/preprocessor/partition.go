package preprocessor

import (
	"github.com/derekprior/leagueforge/internal/model"
)

// PartitionGameslots sorts candidate gameslots for every non-preassigned
// matchup. Every non-preassigned gameslot is sorted into that matchup's
// preferred list (no blackout prohibits it and its location is the
// matchup's preferred home team's home location) or its backup list (no
// blackout prohibits it, but the location doesn't match). Both lists are
// then shuffled with the world's seeded RNG so that Phase 1/2 of the solver
// see a reproducible but non-lexical candidate order.
func PartitionGameslots(w *model.World) error {
	openGameslots := make([]model.GameslotID, 0, len(w.Gameslots))
	for i := range w.Gameslots {
		if w.Gameslots[i].IsPreassigned {
			continue
		}
		openGameslots = append(openGameslots, model.GameslotID(i))
	}

	for i := range w.Matchups {
		matchupID := model.MatchupID(i)
		m := w.Matchup(matchupID)
		if m.IsPreassigned {
			continue
		}

		preferredHomeLocation := w.Team(m.PreferredHomeTeam).HomeLocation

		var preferred, backup []model.GameslotID
		for _, gameslotID := range openGameslots {
			if w.AnyProhibits(matchupID, gameslotID) {
				continue
			}
			g := w.Gameslot(gameslotID)
			if preferredHomeLocation != model.NoLocation && g.Location == preferredHomeLocation {
				preferred = append(preferred, gameslotID)
				g.MatchupsThatPreferThisSlot[matchupID] = true
			} else {
				backup = append(backup, gameslotID)
			}
		}

		w.Rng.Shuffle(len(preferred), func(a, b int) { preferred[a], preferred[b] = preferred[b], preferred[a] })
		w.Rng.Shuffle(len(backup), func(a, b int) { backup[a], backup[b] = backup[b], backup[a] })

		m.PreferredGameslots = preferred
		m.BackupGameslots = backup
	}

	return nil
}

package solver

import (
	"fmt"
	"sort"

	"github.com/derekprior/leagueforge/internal/model"
)

type phase2Candidate struct {
	gameslotID     model.GameslotID
	reuseSingleUse bool
	reuseMultiUse  bool
	giveHome       bool
	useWeekend     bool
	avoidConsec    bool
}

// runPhase2 is depth-first backtracking over the matchups Phase 1 left
// unselected, scanning backup gameslots. It returns
// true iff every matchup in the list ended up with a selection. Hitting the
// dead-end budget aborts the whole search and is reported through s.gaveUp,
// not through the error return (a budget hit is a normal "couldn't finish in
// time" outcome, not a bug).
func (s *Solver) runPhase2() (bool, error) {
	w := s.World

	var pending []model.MatchupID
	for i := range w.Matchups {
		if w.Matchups[i].SelectedGameslot == model.NoGameslot {
			pending = append(pending, model.MatchupID(i))
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return len(w.Matchup(pending[i]).BackupGameslots) < len(w.Matchup(pending[j]).BackupGameslots)
	})

	return s.backtrack(pending, 0)
}

func (s *Solver) backtrack(pending []model.MatchupID, depth int) (bool, error) {
	if s.gaveUp {
		return false, nil
	}
	if depth > s.maxDepthSeen {
		s.maxDepthSeen = depth
		fmt.Printf("solver: reached depth %d/%d\n", depth, len(pending))
	}
	if depth == len(pending) {
		return true, nil
	}

	matchupID := pending[depth]
	for _, c := range s.phase2Candidates(matchupID) {
		if err := s.World.SelectGameslot(matchupID, c.gameslotID); err != nil {
			return false, fmt.Errorf("phase 2: %w", err)
		}

		ok, err := s.backtrack(pending, depth+1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		if err := s.World.DeselectGameslot(matchupID); err != nil {
			return false, fmt.Errorf("phase 2: %w", err)
		}
		if s.gaveUp {
			return false, nil
		}
	}

	s.deadEnds++
	if s.deadEnds%progressEveryDeadEnds == 0 {
		fmt.Printf("solver: %d/%d dead ends\n", s.deadEnds, s.DeadEndBudget)
	}
	if s.deadEnds >= s.DeadEndBudget {
		s.gaveUp = true
	}
	return false, nil
}

// phase2Candidates builds matchup's available backup gameslots, already
// filtered to those that keep every window constraint satisfied, sorted by
// a six-level priority lex order.
func (s *Solver) phase2Candidates(matchupID model.MatchupID) []phase2Candidate {
	w := s.World
	m := w.Matchup(matchupID)

	candidates := make([]phase2Candidate, 0, len(m.BackupGameslots))
	for _, gameslotID := range m.BackupGameslots {
		if w.Gameslot(gameslotID).SelectedMatchup != model.NoMatchup {
			continue
		}
		if !w.WindowConstraintsSatisfied(matchupID, gameslotID) {
			continue
		}
		candidates = append(candidates, phase2Candidate{
			gameslotID:     gameslotID,
			reuseSingleUse: reuseSingleUse(w, gameslotID),
			reuseMultiUse:  reuseMultiUse(w, gameslotID),
			giveHome:       giveNonpreferredTeamHome(w, matchupID, gameslotID),
			useWeekend:     useWeekend(w, gameslotID),
			avoidConsec:    avoidConsecutiveDays(w, matchupID, gameslotID),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.reuseSingleUse != b.reuseSingleUse {
			return a.reuseSingleUse
		}
		if a.reuseMultiUse != b.reuseMultiUse {
			return a.reuseMultiUse
		}
		if a.giveHome != b.giveHome {
			return a.giveHome
		}
		if a.useWeekend != b.useWeekend {
			return a.useWeekend
		}
		return a.avoidConsec && !b.avoidConsec
	})

	return candidates
}

const progressEveryDeadEnds = 500

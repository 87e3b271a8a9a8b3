package solver

import (
	"math"
	"sort"

	"github.com/derekprior/leagueforge/internal/model"
)

// runPhase1 is a greedy, no-backtracking pass that gives every
// non-preassigned matchup a shot at one of its preferred gameslots, in an
// order designed to protect the matchups with the fewest options first.
// Matchups it can't place keep selected_gameslot == null for Phase 2 to
// pick up.
func (s *Solver) runPhase1() {
	w := s.World

	var tier1, tier2, tier3 []model.MatchupID
	for i := range w.Matchups {
		m := &w.Matchups[i]
		if m.IsPreassigned {
			continue
		}
		matchupID := model.MatchupID(i)

		teamA, teamB := w.Team(m.TeamA), w.Team(m.TeamB)
		switch {
		case teamA.HomeLocation != model.NoLocation && teamA.HomeLocation == teamB.HomeLocation:
			tier1 = append(tier1, matchupID)
		case m.PreferredHomeTeam != model.NoTeam && preferredHomeIsScarce(w, m):
			tier2 = append(tier2, matchupID)
		default:
			tier3 = append(tier3, matchupID)
		}
	}

	for _, matchupID := range tier1 {
		s.selectPreferredGameslotForMatchup(matchupID)
	}

	s.assignMostConstrainedFirst(tier2, true)
	s.assignMostConstrainedFirst(tier3, false)
}

func preferredHomeIsScarce(w *model.World, m *model.Matchup) bool {
	loc := w.Team(m.PreferredHomeTeam).HomeLocation
	if loc == model.NoLocation {
		return false
	}
	return w.Location(loc).IsScarce
}

// assignMostConstrainedFirst repeatedly picks, from the remaining pool, the
// matchup scored as hardest to place and assigns it before recomputing. If
// useHomePercentage is set (Phase 1 tier 2 / scarce-home matchups), the
// primary key is the preferred home team's current home percentage with
// ties broken by slot-availability score; otherwise the score alone drives
// the choice (Phase 1 tier 3).
func (s *Solver) assignMostConstrainedFirst(pool []model.MatchupID, useHomePercentage bool) {
	w := s.World
	remaining := append([]model.MatchupID(nil), pool...)

	for len(remaining) > 0 {
		bestIdx := 0

		if useHomePercentage {
			minPct := math.Inf(1)
			for _, matchupID := range remaining {
				pct := currentHomePercentage(w, w.Matchup(matchupID).PreferredHomeTeam)
				if pct < minPct {
					minPct = pct
				}
			}
			bestScore := math.MaxInt
			for i, matchupID := range remaining {
				pct := currentHomePercentage(w, w.Matchup(matchupID).PreferredHomeTeam)
				if pct-minPct > ratioEpsilon {
					continue
				}
				score := slotAvailabilityScore(w, matchupID)
				if score < bestScore {
					bestScore = score
					bestIdx = i
				}
			}
		} else {
			bestScore := math.MaxInt
			for i, matchupID := range remaining {
				score := slotAvailabilityScore(w, matchupID)
				if score < bestScore {
					bestScore = score
					bestIdx = i
				}
			}
		}

		chosen := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		s.selectPreferredGameslotForMatchup(chosen)
	}
}

type phase1Candidate struct {
	gameslotID       model.GameslotID
	reuseLocation    bool
	useWeekend       bool
	avoidConsecutive bool
}

// selectPreferredGameslotForMatchup tries matchup's preferred gameslots in
// a four-level priority lex order, taking the first one that is still
// unselected and keeps every window constraint satisfied. If none
// qualifies the matchup is left unselected for Phase 2.
func (s *Solver) selectPreferredGameslotForMatchup(matchupID model.MatchupID) {
	w := s.World
	m := w.Matchup(matchupID)

	candidates := make([]phase1Candidate, 0, len(m.PreferredGameslots))
	for _, gameslotID := range m.PreferredGameslots {
		if w.Gameslot(gameslotID).SelectedMatchup != model.NoMatchup {
			continue
		}
		candidates = append(candidates, phase1Candidate{
			gameslotID:       gameslotID,
			reuseLocation:    reuseLocation(w, gameslotID),
			useWeekend:       useWeekend(w, gameslotID),
			avoidConsecutive: avoidConsecutiveDays(w, matchupID, gameslotID),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.reuseLocation != b.reuseLocation {
			return a.reuseLocation
		}
		if a.useWeekend != b.useWeekend {
			return a.useWeekend
		}
		return a.avoidConsecutive && !b.avoidConsecutive
	})

	for _, c := range candidates {
		if w.WindowConstraintsSatisfied(matchupID, c.gameslotID) {
			if err := w.SelectGameslot(matchupID, c.gameslotID); err != nil {
				panic("phase 1: " + err.Error())
			}
			return
		}
	}
}

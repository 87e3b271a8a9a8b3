// Package solver implements a two-phase assignment search: a greedy
// preferred-slot pass (Phase 1) followed by depth-first backtracking over
// backup slots (Phase 2), bounded by a dead-end budget. All mutable search
// state (dead-end count, deepest recursion reached, the give-up flag)
// lives on the one Solver value rather than as free-floating globals.
package solver

import "github.com/derekprior/leagueforge/internal/model"

const defaultDeadEndBudget = 10000

// Solver owns one run's search state over a model.World.
type Solver struct {
	World         *model.World
	DeadEndBudget int

	deadEnds     int
	maxDepthSeen int
	gaveUp       bool
}

// New builds a Solver. A non-positive deadEndBudget falls back to 10000.
func New(w *model.World, deadEndBudget int) *Solver {
	if deadEndBudget <= 0 {
		deadEndBudget = defaultDeadEndBudget
	}
	return &Solver{World: w, DeadEndBudget: deadEndBudget}
}

// Run executes Phase 1 then Phase 2. It returns true iff every matchup in
// the world ended up with a selected gameslot. A false result with a nil
// error is the non-fatal "couldn't find a full schedule" outcome; a
// non-nil error signals an internal invariant violation.
func (s *Solver) Run() (bool, error) {
	s.runPhase1()
	return s.runPhase2()
}

// DeadEnds reports how many dead ends Phase 2 hit.
func (s *Solver) DeadEnds() int { return s.deadEnds }

// MaxDepthSeen reports the deepest recursion Phase 2 reached.
func (s *Solver) MaxDepthSeen() int { return s.maxDepthSeen }

// GaveUp reports whether Phase 2 stopped because it hit the dead-end
// budget, as opposed to exhausting the search space outright.
func (s *Solver) GaveUp() bool { return s.gaveUp }

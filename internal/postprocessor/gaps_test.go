package postprocessor

import (
	"testing"

	"github.com/derekprior/leagueforge/internal/model"
)

func TestRemoveIntraBlockGaps_fillsGap(t *testing.T) {
	w := model.NewWorld(1)
	loc := w.AddLocation("X", false)
	teamA := w.AddTeam("U10", "A", loc)
	teamB := w.AddTeam("U10", "B", loc)
	teamC := w.AddTeam("U10", "C", loc)
	teamD := w.AddTeam("U10", "D", loc)
	matchupA := w.AddMatchup(teamA, teamB)
	matchupB := w.AddMatchup(teamC, teamD)

	date := model.NewDate(2026, 4, 1)
	s1 := w.AddGameslot(date, 9*60, loc)
	s2 := w.AddGameslot(date, 10*60, loc)
	s3 := w.AddGameslot(date, 11*60, loc)

	w.Matchup(matchupA).BackupGameslots = []model.GameslotID{s1}
	w.Matchup(matchupB).BackupGameslots = []model.GameslotID{s3, s2}

	if err := w.SelectGameslot(matchupA, s1); err != nil {
		t.Fatal(err)
	}
	if err := w.SelectGameslot(matchupB, s3); err != nil {
		t.Fatal(err)
	}

	failures := RemoveIntraBlockGaps(w)
	if len(failures) != 0 {
		t.Fatalf("expected no block failures, got %v", failures)
	}

	if w.Gameslot(s1).SelectedMatchup != matchupA {
		t.Error("matchup A should remain at s1")
	}
	if w.Gameslot(s2).SelectedMatchup != matchupB {
		t.Error("matchup B should have moved into s2, closing the gap")
	}
	if w.Gameslot(s3).SelectedMatchup != model.NoMatchup {
		t.Error("s3 should now be open")
	}
}

func TestRemoveIntraBlockGaps_leavesPreassignedBlockUntouched(t *testing.T) {
	w := model.NewWorld(1)
	loc := w.AddLocation("X", false)
	teamA := w.AddTeam("U10", "A", loc)
	teamB := w.AddTeam("U10", "B", loc)
	teamC := w.AddTeam("U10", "C", loc)
	teamD := w.AddTeam("U10", "D", loc)
	matchupA := w.AddMatchup(teamA, teamB)
	matchupB := w.AddMatchup(teamC, teamD)

	date := model.NewDate(2026, 4, 1)
	s1 := w.AddGameslot(date, 9*60, loc)
	w.AddGameslot(date, 10*60, loc) // s2, left open: the gap
	s3 := w.AddGameslot(date, 11*60, loc)

	w.Matchup(matchupA).IsPreassigned = true
	w.Matchup(matchupA).PreferredGameslots = []model.GameslotID{s1}
	w.Matchup(matchupB).BackupGameslots = []model.GameslotID{s3}

	if err := w.SelectGameslot(matchupA, s1); err != nil {
		t.Fatal(err)
	}
	if err := w.SelectGameslot(matchupB, s3); err != nil {
		t.Fatal(err)
	}

	failures := RemoveIntraBlockGaps(w)
	if len(failures) != 1 {
		t.Fatalf("expected 1 block failure for the preassigned block, got %d", len(failures))
	}

	if w.Gameslot(s1).SelectedMatchup != matchupA || w.Gameslot(s3).SelectedMatchup != matchupB {
		t.Error("a block containing a preassigned matchup must not be rearranged")
	}
}

func TestRemoveIntraBlockGaps_alreadyGaplessBlockUnchanged(t *testing.T) {
	w := model.NewWorld(1)
	loc := w.AddLocation("X", false)
	teamA := w.AddTeam("U10", "A", loc)
	teamB := w.AddTeam("U10", "B", loc)
	matchupA := w.AddMatchup(teamA, teamB)

	date := model.NewDate(2026, 4, 1)
	s1 := w.AddGameslot(date, 9*60, loc)
	w.Matchup(matchupA).BackupGameslots = []model.GameslotID{s1}
	if err := w.SelectGameslot(matchupA, s1); err != nil {
		t.Fatal(err)
	}

	failures := RemoveIntraBlockGaps(w)
	if len(failures) != 0 {
		t.Fatalf("expected no failures for an already-gapless block, got %v", failures)
	}
}

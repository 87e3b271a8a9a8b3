package preprocessor

import (
	"fmt"

	"github.com/derekprior/leagueforge/internal/model"
)

// Run sequences three steps: apply preassignments, choose each remaining
// matchup's preferred home team, then partition candidate gameslots into
// preferred/backup. Nothing downstream may read a matchup's
// PreferredGameslots/BackupGameslots until this returns successfully.
func Run(w *model.World, preassignments []model.Preassignment) error {
	if err := ApplyPreassignments(w, preassignments); err != nil {
		return fmt.Errorf("applying preassignments: %w", err)
	}
	if err := ChoosePreferredHomeTeams(w); err != nil {
		return fmt.Errorf("choosing preferred home teams: %w", err)
	}
	if err := PartitionGameslots(w); err != nil {
		return fmt.Errorf("partitioning gameslots: %w", err)
	}
	return nil
}

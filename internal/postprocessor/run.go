package postprocessor

import "github.com/derekprior/leagueforge/internal/model"

// Run sequences the de-isolation and gap-removal steps and returns the
// (date, location) blocks that gap removal could not rearrange into a
// gapless run. An empty slice means every block was already gapless or
// got fixed.
func Run(w *model.World) []BlockFailure {
	DeisolateMatchups(w)
	return RemoveIntraBlockGaps(w)
}

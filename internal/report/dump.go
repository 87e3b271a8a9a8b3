package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/derekprior/leagueforge/internal/csvio"
	"github.com/derekprior/leagueforge/internal/model"
)

// WritePasteableDump writes a "pasteable" text dump: one block per day,
// slots in time order, each filled slot rendered as
// "division\thome_team\taway_team" (per World.HomeAwayOrder) or "OPEN",
// blank line between days.
func WritePasteableDump(w io.Writer, world *model.World) error {
	byDate := make(map[model.Date][]model.GameslotID)
	var dates []model.Date
	for i := range world.Gameslots {
		g := &world.Gameslots[i]
		if _, seen := byDate[g.Date]; !seen {
			dates = append(dates, g.Date)
		}
		byDate[g.Date] = append(byDate[g.Date], model.GameslotID(i))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	for dayIndex, date := range dates {
		slots := byDate[date]
		sort.Slice(slots, func(i, j int) bool {
			return world.Gameslot(slots[i]).Time < world.Gameslot(slots[j]).Time
		})

		if _, err := fmt.Fprintf(w, "%s\n", csvio.FormatDate(date)); err != nil {
			return err
		}
		for _, gameslotID := range slots {
			g := world.Gameslot(gameslotID)
			if g.SelectedMatchup == model.NoMatchup {
				if _, err := fmt.Fprintln(w, "OPEN"); err != nil {
					return err
				}
				continue
			}
			m := world.Matchup(g.SelectedMatchup)
			home, away := world.HomeAwayOrder(g.SelectedMatchup)
			line := fmt.Sprintf("%s\t%s\t%s", m.Division, world.Team(home).Name, world.Team(away).Name)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if dayIndex != len(dates)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

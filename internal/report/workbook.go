package report

import (
	"fmt"

	"github.com/derekprior/leagueforge/internal/csvio"
	"github.com/derekprior/leagueforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// LoadFromWorkbook rebuilds a minimal World — locations, teams, matchups,
// and selected gameslots, but no blackouts or window constraints — directly
// from a previously generated workbook's Master Schedule sheet, so Compute
// can re-derive quality metrics for a schedule with no CSV input on hand. Team
// divisions are unknown from the sheet alone and are left blank.
func LoadFromWorkbook(path string) (*model.World, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Master Schedule")
	if err != nil {
		return nil, fmt.Errorf("reading Master Schedule: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Master Schedule is empty")
	}

	w := model.NewWorld(1)
	header := rows[0]
	numLocations := len(header) - 3
	for i := 0; i < numLocations; i++ {
		name := fmt.Sprintf("Location %d", i+1)
		if i+3 < len(header) && header[i+3] != "" {
			name = header[i+3]
		}
		w.AddLocation(name, false)
	}

	teamsByName := make(map[string]model.TeamID)
	teamID := func(name string) model.TeamID {
		if id, ok := teamsByName[name]; ok {
			return id
		}
		id := w.AddTeam("", name, model.NoLocation)
		teamsByName[name] = id
		return id
	}

	for rowIndex, row := range rows {
		if rowIndex == 0 || len(row) < 3 || row[0] == "" {
			continue
		}
		date, err := csvio.ParseDate(row[0])
		if err != nil {
			continue
		}
		clock, err := csvio.ParseClock(row[2])
		if err != nil {
			continue
		}

		for locIndex := 0; locIndex < numLocations; locIndex++ {
			col := locIndex + 3
			if col >= len(row) || row[col] == "" {
				continue
			}
			away, home, ok := parseGameCell(row[col])
			if !ok {
				continue
			}
			homeID, awayID := teamID(home), teamID(away)
			matchupID := w.AddMatchup(homeID, awayID)
			if err := w.SelectPreferredHomeTeam(matchupID, homeID); err != nil {
				return nil, err
			}
			gameslotID := w.AddGameslot(date, clock, model.LocationID(locIndex))
			w.Gameslot(gameslotID).MatchupsThatPreferThisSlot[matchupID] = true
			if err := w.SelectGameslot(matchupID, gameslotID); err != nil {
				return nil, fmt.Errorf("replaying workbook row %d: %w", rowIndex+1, err)
			}
		}
	}

	return w, nil
}

// parseGameCell parses "Away @ Home" and returns (away, home, true).
func parseGameCell(cell string) (away, home string, ok bool) {
	for i := 0; i < len(cell)-2; i++ {
		if cell[i] == ' ' && cell[i+1] == '@' && cell[i+2] == ' ' {
			return cell[:i], cell[i+3:], true
		}
	}
	return "", "", false
}

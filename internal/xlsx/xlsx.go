// Package xlsx writes the solved World out as an Excel workbook: one master
// schedule sheet plus one per-team sheet driven by a dynamic-array formula
// pointed at model.World's selected gameslots.
package xlsx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/derekprior/leagueforge/internal/csvio"
	"github.com/derekprior/leagueforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// Generate builds the workbook for a solved World: a "Master Schedule"
// sheet with one column per location, and one sheet per team with a
// LET/FILTER/HSTACK formula that derives that team's games from the master
// sheet.
func Generate(w *model.World) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	lastMasterRow, err := writeMasterSheet(f, w)
	if err != nil {
		return nil, fmt.Errorf("writing master sheet: %w", err)
	}
	if err := writeTeamSheets(f, w, lastMasterRow); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func locationColumnName(name string, allNames []string) string {
	first := firstWord(name)
	count := 0
	for _, n := range allNames {
		if firstWord(n) == first {
			count++
		}
	}
	if count > 1 {
		return name
	}
	return first
}

func firstWord(s string) string {
	for i, c := range s {
		if c == ' ' {
			return s[:i]
		}
	}
	return s
}

// blackoutNote returns a short display string for a gameslot that no
// matchup occupies because a wildcard blackout (no division, no team)
// covers it, or "" if the slot is simply open.
func blackoutNote(w *model.World, g *model.Gameslot) string {
	for i := range w.Blackouts {
		b := &w.Blackouts[i]
		if b.Division != "" || b.TeamName != "" {
			continue
		}
		if !b.Date.Equal(g.Date) {
			continue
		}
		if b.Start != nil && g.Time.Before(*b.Start) {
			continue
		}
		if b.End != nil && g.Time.After(*b.End) {
			continue
		}
		return "BLACKOUT"
	}
	return ""
}

func writeMasterSheet(f *excelize.File, w *model.World) (int, error) {
	sheet := "Master Schedule"
	f.NewSheet(sheet)

	var locationNames []string
	for i := range w.Locations {
		locationNames = append(locationNames, w.Locations[i].Name)
	}
	locationCols := make([]string, len(locationNames))
	for i, name := range locationNames {
		locationCols[i] = locationColumnName(name, locationNames)
	}

	headers := []string{"Date", "Day", "Time"}
	headers = append(headers, locationCols...)
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 16, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if headerStyle != 0 {
		for i := range headers {
			f.SetCellStyle(sheet, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
		}
	}

	cellStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 16, Family: "Arial"}})
	locationCellStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	type timeKey struct {
		date model.Date
		time model.Clock
	}
	seen := make(map[timeKey]bool)
	var rows []timeKey
	for i := range w.Gameslots {
		g := &w.Gameslots[i]
		k := timeKey{g.Date, g.Time}
		if !seen[k] {
			seen[k] = true
			rows = append(rows, k)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].date.Equal(rows[j].date) {
			return rows[i].date.Before(rows[j].date)
		}
		return rows[i].time < rows[j].time
	})

	slotByRowLocation := make(map[timeKey]map[model.LocationID]model.GameslotID)
	for i := range w.Gameslots {
		g := &w.Gameslots[i]
		k := timeKey{g.Date, g.Time}
		if slotByRowLocation[k] == nil {
			slotByRowLocation[k] = make(map[model.LocationID]model.GameslotID)
		}
		slotByRowLocation[k][g.Location] = model.GameslotID(i)
	}

	for i, k := range rows {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), csvio.FormatDate(k.date))
		f.SetCellValue(sheet, cellRef(2, row), k.date.Format("Mon"))
		f.SetCellValue(sheet, cellRef(3, row), csvio.FormatClock(k.time))

		for li := range w.Locations {
			col := li + 4
			gameslotID, ok := slotByRowLocation[k][model.LocationID(li)]
			if !ok {
				continue
			}
			g := w.Gameslot(gameslotID)
			if g.SelectedMatchup != model.NoMatchup {
				home, away := w.HomeAwayOrder(g.SelectedMatchup)
				f.SetCellValue(sheet, cellRef(col, row), fmt.Sprintf("%s @ %s", w.Team(away).Name, w.Team(home).Name))
			} else if note := blackoutNote(w, g); note != "" {
				f.SetCellValue(sheet, cellRef(col, row), note)
			}
		}

		if cellStyle != 0 {
			for col := 1; col <= 3; col++ {
				f.SetCellStyle(sheet, cellRef(col, row), cellRef(col, row), cellStyle)
			}
			for col := 4; col <= len(headers); col++ {
				f.SetCellStyle(sheet, cellRef(col, row), cellRef(col, row), locationCellStyle)
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 8)
	f.SetColWidth(sheet, "C", "C", 10)
	for i := range w.Locations {
		col := colLetter(i + 4)
		f.SetColWidth(sheet, col, col, 30)
	}

	lastRow := len(rows) + 1
	redFill, _ := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})
	for i := range w.Locations {
		col := colLetter(i + 4)
		cellRange := fmt.Sprintf("%s2:%s%d", col, col, lastRow)
		topCell := fmt.Sprintf("%s2", col)
		formula := fmt.Sprintf(`AND(%s<>"",ISERROR(FIND(" @ ",%s)))`, topCell, topCell)
		f.SetConditionalFormat(sheet, cellRange, []excelize.ConditionalFormatOptions{
			{Type: "formula", Criteria: formula, Format: &redFill},
		})
	}

	return lastRow, nil
}

func writeTeamSheets(f *excelize.File, w *model.World, lastMasterRow int) error {
	masterSheet := "Master Schedule"

	var locationNames []string
	for i := range w.Locations {
		locationNames = append(locationNames, w.Locations[i].Name)
	}

	for i := range w.Teams {
		team := w.Teams[i].Name
		sheet := team
		f.NewSheet(sheet)

		headers := []string{"Date", "Day", "Time", "Location", "Opponent", "Home/Away", "Game"}
		for i, h := range headers {
			f.SetCellValue(sheet, cellRef(i+1, 1), h)
		}

		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 16, Family: "Arial"},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if headerStyle != 0 {
			for i := range headers {
				f.SetCellStyle(sheet, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
			}
		}

		formula := buildTeamFormula(team, masterSheet, locationNames, lastMasterRow)
		f.SetCellFormula(sheet, "A2", formula)

		cellStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 16, Family: "Arial"}})
		if cellStyle != 0 {
			lastCol := colLetter(len(headers))
			f.SetColStyle(sheet, fmt.Sprintf("A:%s", lastCol), cellStyle)
		}

		widths := map[string]float64{"A": 18, "B": 8, "C": 10, "D": 28, "E": 16, "F": 14, "G": 28}
		for col, width := range widths {
			f.SetColWidth(sheet, col, col, width)
		}
	}

	return nil
}

// buildTeamFormula creates a LET/FILTER/HSTACK formula that derives a
// team's schedule from the Master Schedule sheet. Requires Excel 365 or
// Excel 2021+ for dynamic array support.
func buildTeamFormula(team, masterSheet string, locationNames []string, lastRow int) string {
	ms := fmt.Sprintf("'%s'", masterSheet)
	colRange := func(col string) string {
		return fmt.Sprintf("%s!%s$2:%s$%d", ms, col, col, lastRow)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf(`team,"%s"`, team))
	parts = append(parts, fmt.Sprintf("d,%s", colRange("A")))
	parts = append(parts, fmt.Sprintf("dy,%s", colRange("B")))
	parts = append(parts, fmt.Sprintf("tm,%s", colRange("C")))

	for i := range locationNames {
		col := colLetter(i + 4)
		parts = append(parts, fmt.Sprintf("c%d,%s", i+1, colRange(col)))
	}
	for i := range locationNames {
		parts = append(parts, fmt.Sprintf("m%d,ISNUMBER(SEARCH(team,c%d))", i+1, i+1))
	}

	matchExprs := make([]string, len(locationNames))
	for i := range locationNames {
		matchExprs[i] = fmt.Sprintf("m%d", i+1)
	}
	parts = append(parts, fmt.Sprintf("found,(%s)>0", strings.Join(matchExprs, "+")))

	gameExpr := `""`
	for i := len(locationNames) - 1; i >= 0; i-- {
		gameExpr = fmt.Sprintf("IF(m%d,c%d,%s)", i+1, i+1, gameExpr)
	}
	parts = append(parts, fmt.Sprintf("game,%s", gameExpr))

	locationExpr := `""`
	for i := len(locationNames) - 1; i >= 0; i-- {
		colName := locationColumnName(locationNames[i], locationNames)
		locationExpr = fmt.Sprintf(`IF(m%d,"%s",%s)`, i+1, colName, locationExpr)
	}
	parts = append(parts, fmt.Sprintf("location,%s", locationExpr))

	parts = append(parts, `opp,IFERROR(IF(LEFT(game,FIND(" @ ",game)-1)=team,MID(game,FIND(" @ ",game)+3,100),LEFT(game,FIND(" @ ",game)-1)),"")`)
	parts = append(parts, `ha,IFERROR(IF(LEFT(game,FIND(" @ ",game)-1)=team,"Away","Home"),"")`)

	parts = append(parts, `FILTER(HSTACK(d,dy,tm,location,opp,ha,game),found,"No games scheduled")`)

	return "LET(" + strings.Join(parts, ",") + ")"
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

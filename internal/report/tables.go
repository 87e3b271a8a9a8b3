package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/derekprior/leagueforge/internal/csvio"
)

// PrintTables renders every computed metric as a column-aligned table,
// using tabwriter to align columns instead of hand-computing widths and
// building one format string per row.
func PrintTables(w io.Writer, m Metrics) {
	printBlockHistogram(w, m)
	printNonPreferredLocations(w, m)
	printWeekdayCounts(w, m)
	printConsecutivePairs(w, m)
	printLongestGap(w, m)
}

func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
}

func printBlockHistogram(w io.Writer, m Metrics) {
	fmt.Fprintln(w, "Block-size histogram")
	tw := newTabwriter(w)
	sizes := make([]int, 0, len(m.BlockSizeHistogram))
	for size := range m.BlockSizeHistogram {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	for _, size := range sizes {
		fmt.Fprintf(tw, "%d games\t%d blocks\n", size, m.BlockSizeHistogram[size])
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printNonPreferredLocations(w io.Writer, m Metrics) {
	fmt.Fprintln(w, "Games at a non-preferred location")
	if len(m.NonPreferredLocations) == 0 {
		fmt.Fprintln(w, "none")
		fmt.Fprintln(w)
		return
	}
	tw := newTabwriter(w)
	fmt.Fprintln(tw, "Division\tMatchup\tDate\tLocation")
	for _, g := range m.NonPreferredLocations {
		fmt.Fprintf(tw, "%s\t%s vs %s\t%s\t%s\n", g.Division, g.TeamA, g.TeamB, csvio.FormatDate(g.Date), g.Location)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printWeekdayCounts(w io.Writer, m Metrics) {
	fmt.Fprintln(w, "Games by weekday")
	tw := newTabwriter(w)
	for weekday := 0; weekday < 7; weekday++ {
		day := weekdayName(weekday)
		fmt.Fprintf(tw, "%s\t%d\n", day, m.WeekdayCounts[toWeekday(weekday)])
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printConsecutivePairs(w io.Writer, m Metrics) {
	fmt.Fprintln(w, "Back-to-back game days")
	if len(m.ConsecutivePairs) == 0 {
		fmt.Fprintln(w, "none")
		fmt.Fprintln(w)
		return
	}
	tw := newTabwriter(w)
	fmt.Fprintln(tw, "Division\tTeam\tFirst\tSecond")
	for _, p := range m.ConsecutivePairs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Division, p.Team, csvio.FormatDate(p.First), csvio.FormatDate(p.Second))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printLongestGap(w io.Writer, m Metrics) {
	fmt.Fprintln(w, "Longest gap between a team's games")
	if m.LongestGap.Days == 0 {
		fmt.Fprintln(w, "none")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "%s (%s): %d days, %s to %s\n",
		m.LongestGap.Team, m.LongestGap.Division, m.LongestGap.Days,
		csvio.FormatDate(m.LongestGap.From), csvio.FormatDate(m.LongestGap.To))
	fmt.Fprintln(w)
}

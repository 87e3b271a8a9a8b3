package csvio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/derekprior/leagueforge/internal/model"
)

// ParseDate parses the I/O-edge date format M/D/YYYY.
func ParseDate(s string) (model.Date, error) {
	t, err := time.Parse("1/2/2006", s)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid date %q (want M/D/YYYY): %w", s, err)
	}
	return model.NewDate(t.Year(), t.Month(), t.Day()), nil
}

// ParseClock parses the I/O-edge 12-hour minute-precision time format
// I:MMam / I:MMpm into minutes since midnight.
func ParseClock(s string) (model.Clock, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if len(lower) < 4 {
		return 0, fmt.Errorf("invalid time %q (want I:MMam or I:MMpm)", s)
	}
	suffix := lower[len(lower)-2:]
	if suffix != "am" && suffix != "pm" {
		return 0, fmt.Errorf("invalid time %q (want I:MMam or I:MMpm)", s)
	}

	body := lower[:len(lower)-2]
	parts := strings.SplitN(body, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q (want I:MMam or I:MMpm)", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}

	if suffix == "am" && hour == 12 {
		hour = 0
	}
	if suffix == "pm" && hour != 12 {
		hour += 12
	}

	return model.Clock(hour*60 + minute), nil
}

// FormatClock renders a Clock back to the I/O-edge I:MMam/I:MMpm format.
func FormatClock(c model.Clock) string {
	hour, minute := int(c)/60, int(c)%60
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d%s", display, minute, suffix)
}

// FormatDate renders a Date back to the I/O-edge M/D/YYYY format.
func FormatDate(d model.Date) string {
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}

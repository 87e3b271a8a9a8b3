package report

import "time"

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayName(i int) string { return weekdayNames[i] }

func toWeekday(i int) time.Weekday { return time.Weekday(i) }

package domain

import (
	"regexp"
	"time"
)

// weekLabelFormat renders one boundary of a week label.
const weekLabelFormat = "02.01.2006"

// WeekOptions returns the 3 selectable week labels: the week containing
// today (Monday-start) and the two following weeks, each rendered as
// "DD.MM.YYYY - DD.MM.YYYY" with the end 6 days after the start.
func WeekOptions(today time.Time) []string {
	// time.Weekday counts from Sunday, plan weeks start on Monday.
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	options := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		start := monday.AddDate(0, 0, 7*i)
		end := start.AddDate(0, 0, 6)
		options = append(options, start.Format(weekLabelFormat)+" - "+end.Format(weekLabelFormat))
	}
	return options
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether s is a zero-padded 24-hour HH:MM time.
// "18:0", "24:00" and the empty string are all rejected.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

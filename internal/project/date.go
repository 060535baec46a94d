package project

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the layout used to print dates.
	DateLayout = "02/01/2006"

	// parseLayout accepts one or two digit days and months.
	parseLayout = "2/1/2006"

	secondsPerDay = 24 * 60 * 60
)

var datePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

// ParseDate parses a day/month/year date such as "23/05/2024" or "2/06/2024".
// The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q does not match dd/mm/yyyy", ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation(parseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// FormatDate prints a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both dates are midnight UTC. Counts in seconds, not time.Duration, so
// spans of several centuries stay exact.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

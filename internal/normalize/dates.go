package normalize

import (
	"regexp"
	"strconv"
	"time"
)

// ISODate is the calendar-date layout used throughout the dashboard payload.
const ISODate = "2006-01-02"

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	ISODate,
}

var brazilianDate = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})`)

// ParseAnyDate accepts ISO-like timestamps or DD/MM/YYYY strings. The boolean
// is false when nothing parseable is found; callers treat that as absence.
func ParseAnyDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if m := brazilianDate.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

// DateOnly truncates an instant to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package normalize

import (
	"math"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// DueInfo is the outcome of due-date classification.
type DueInfo struct {
	Overdue      bool
	DaysUntilDue *int
	Category     domain.DueCategory
}

// ClassifyDue computes the due category for a forecast date (ISO date string
// or nil) relative to today. Inactive tickets never alarm: closed work is not
// late, whatever its stale forecast says.
func ClassifyDue(forecastISO *string, inactive bool, today time.Time) DueInfo {
	if forecastISO == nil {
		return DueInfo{Category: domain.DueCategoryNone}
	}
	forecast, err := time.ParseInLocation(ISODate, *forecastISO, today.Location())
	if err != nil {
		return DueInfo{Category: domain.DueCategoryNone}
	}

	days := daysBetween(DateOnly(today), forecast)
	overdue := days < 0 && !inactive

	category := domain.DueCategoryOK
	if !inactive {
		switch {
		case overdue:
			category = domain.DueCategoryOverdue
		case days <= 2:
			category = domain.DueCategoryWarning
		}
	}
	return DueInfo{Overdue: overdue, DaysUntilDue: &days, Category: category}
}

// daysBetween returns whole calendar days from a to b, negative when b is in
// the past. Rounding absorbs DST-shortened or -lengthened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-06-02 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestWorkingMinutesFullDay(t *testing.T) {
	week := DefaultWorkWeek()

	// Two windows of 4h15m and 4h30m.
	got := week.WorkingMinutesBetween(monday(0, 0), monday(23, 59))
	assert.Equal(t, 525, got)
	assert.Equal(t, 525, week.MinutesPerDay(time.Monday))
}

func TestWorkingMinutesEmptyAndInvertedRanges(t *testing.T) {
	week := DefaultWorkWeek()

	at := monday(9, 0)
	assert.Equal(t, 0, week.WorkingMinutesBetween(at, at))
	assert.Equal(t, 0, week.WorkingMinutesBetween(monday(12, 0), monday(9, 0)))
}

func TestWorkingMinutesWeekendIsZero(t *testing.T) {
	week := DefaultWorkWeek()

	saturday := time.Date(2025, 6, 7, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, week.WorkingMinutesBetween(saturday, saturday.Add(10*time.Hour)))
}

func TestWorkingMinutesClipsToWindows(t *testing.T) {
	week := DefaultWorkWeek()

	// 11:00 to 14:00 covers 11:00-12:00 plus 13:30-14:00.
	assert.Equal(t, 90, week.WorkingMinutesBetween(monday(11, 0), monday(14, 0)))

	// Entirely inside the lunch gap.
	assert.Equal(t, 0, week.WorkingMinutesBetween(monday(12, 10), monday(13, 20)))

	// Before working hours into the first window.
	assert.Equal(t, 15, week.WorkingMinutesBetween(monday(6, 0), monday(8, 0)))
}

func TestWorkingMinutesAcrossDays(t *testing.T) {
	week := DefaultWorkWeek()

	// Monday 17:00 to Tuesday 08:45: 60 min Monday + 60 min Tuesday.
	tuesday := time.Date(2025, 6, 3, 8, 45, 0, 0, time.UTC)
	assert.Equal(t, 120, week.WorkingMinutesBetween(monday(17, 0), tuesday))
}

func TestWorkingMinutesAcrossWeekend(t *testing.T) {
	week := DefaultWorkWeek()

	// Friday 17:00 to Monday 08:45 skips Saturday and Sunday.
	friday := time.Date(2025, 6, 6, 17, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2025, 6, 9, 8, 45, 0, 0, time.UTC)
	assert.Equal(t, 120, week.WorkingMinutesBetween(friday, nextMonday))
}

// Package calendar answers how many working minutes occur between two
// instants, given a fixed weekly schedule of working windows per weekday.
package calendar

import "time"

// Window is one working interval within a day, as minutes from midnight.
type Window struct {
	StartMinute int
	EndMinute   int
}

// WorkWeek maps each weekday to its working windows. Days without windows
// contribute no working time.
type WorkWeek map[time.Weekday][]Window

// At builds a window from clock times, e.g. At(7, 45, 12, 0).
func At(startHour, startMin, endHour, endMin int) Window {
	return Window{
		StartMinute: startHour*60 + startMin,
		EndMinute:   endHour*60 + endMin,
	}
}

// DefaultWorkWeek is the support desk schedule: Monday through Friday,
// 07:45–12:00 and 13:30–18:00.
func DefaultWorkWeek() WorkWeek {
	weekday := []Window{At(7, 45, 12, 0), At(13, 30, 18, 0)}
	return WorkWeek{
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
	}
}

// MinutesPerDay sums the window lengths configured for a weekday.
func (w WorkWeek) MinutesPerDay(day time.Weekday) int {
	total := 0
	for _, win := range w[day] {
		if win.EndMinute > win.StartMinute {
			total += win.EndMinute - win.StartMinute
		}
	}
	return total
}

// WorkingMinutesBetween counts the working minutes inside [start, end].
// Inverted or empty ranges yield zero. Instants outside any window on their
// day contribute nothing from the portion before or after working hours.
func (w WorkWeek) WorkingMinutesBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}

	loc := start.Location()
	end = end.In(loc)

	total := 0
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	for !day.After(lastDay) {
		for _, win := range w[day.Weekday()] {
			winStart := day.Add(time.Duration(win.StartMinute) * time.Minute)
			winEnd := day.Add(time.Duration(win.EndMinute) * time.Minute)

			if winStart.Before(start) {
				winStart = start
			}
			if winEnd.After(end) {
				winEnd = end
			}
			if winEnd.After(winStart) {
				total += int(winEnd.Sub(winStart) / time.Minute)
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return total
}

// Package aggregate folds canonical tickets into the dashboard snapshot.
// Every call site shares this one engine; variants differ only in the
// pre-filter they apply.
package aggregate

import (
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

// Options narrows the input set before any counting happens, so totals and
// breakdowns stay internally consistent for the filtered view.
type Options struct {
	// Owner restricts the snapshot to one assignee, matched exactly after
	// case and diacritic folding. Empty means no restriction.
	Owner string
}

// Aggregate computes the snapshot for a ticket list and reference date.
// Pure: the same input always yields the same snapshot. Ticket order is
// preserved, never sorted.
func Aggregate(tickets []domain.CanonicalTicket, today time.Time, opts Options) *domain.Snapshot {
	if opts.Owner != "" {
		tickets = filterByOwner(tickets, opts.Owner)
	}

	snapshot := &domain.Snapshot{
		Counts:           make(map[string]int),
		CountsPerUrgency: make(map[string]int),
		CountsPerOwner:   make(map[string]int),
		Tickets:          tickets,
		FetchedAt:        today,
	}
	if snapshot.Tickets == nil {
		snapshot.Tickets = []domain.CanonicalTicket{}
	}

	counts := snapshot.Counts
	for _, key := range countKeys {
		counts[key] = 0
	}

	for i := range tickets {
		t := &tickets[i]

		if !t.CreatedDate.IsZero() && sameMonth(t.CreatedDate, today) {
			counts[domain.CountMonthOpenedAll]++
		}

		if !t.Canceled {
			counts[domain.CountTotal]++
			switch t.BaseStatus {
			case domain.BaseStatusNew:
				counts[domain.CountNew]++
			case domain.BaseStatusInAttendance:
				counts[domain.CountInAttendance]++
			case domain.BaseStatusStopped:
				counts[domain.CountStopped]++
			}
			if t.IsClosedOrResolved() {
				counts[domain.CountClosed]++
			}
			if t.Overdue {
				counts[domain.CountOverdue]++
			}
		}

		// Urgency and owner breakdowns represent active workload only.
		if t.IsInactive() {
			continue
		}
		snapshot.CountsPerUrgency[t.Urgency]++
		snapshot.CountsPerOwner[t.Owner]++
	}

	counts[domain.CountOpenTickets] = counts[domain.CountNew] + counts[domain.CountInAttendance] + counts[domain.CountStopped]
	return snapshot
}

var countKeys = []string{
	domain.CountTotal,
	domain.CountNew,
	domain.CountInAttendance,
	domain.CountStopped,
	domain.CountClosed,
	domain.CountOverdue,
	domain.CountMonthOpenedAll,
	domain.CountOpenTickets,
}

func filterByOwner(tickets []domain.CanonicalTicket, owner string) []domain.CanonicalTicket {
	target := normalize.Fold(owner)
	filtered := make([]domain.CanonicalTicket, 0, len(tickets))
	for _, t := range tickets {
		if normalize.Fold(t.Owner) == target {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

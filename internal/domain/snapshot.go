package domain

import "time"

// Count keys present in Snapshot.Counts.
const (
	CountTotal          = "Total"
	CountNew            = "New"
	CountInAttendance   = "InAttendance"
	CountStopped        = "Stopped"
	CountClosed         = "Closed"
	CountOverdue        = "Overdue"
	CountMonthOpenedAll = "MonthOpenedAll"
	CountOpenTickets    = "OpenTickets"
)

// Snapshot is one immutable aggregation result produced from a single
// successful upstream fetch. It is replaced wholesale, never mutated in place.
type Snapshot struct {
	Counts           map[string]int    `json:"counts"`
	CountsPerUrgency map[string]int    `json:"countsPerUrgency"`
	CountsPerOwner   map[string]int    `json:"countsPerOwner"`
	Tickets          []CanonicalTicket `json:"tickets"`
	FetchedAt        time.Time         `json:"-"`
	Synthetic        bool              `json:"-"`
}

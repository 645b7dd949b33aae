package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSnapshotRefreshed   EventType = "snapshot_refreshed"
	EventSnapshotFallback    EventType = "snapshot_fallback"
	EventInactivationFlagged EventType = "inactivation_flagged"
)

// Event represents a pipeline event emitted during an aggregation run.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Team      string      `json:"team"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SnapshotRefreshedPayload payload.
type SnapshotRefreshedPayload struct {
	TicketCount int `json:"ticket_count"`
	Overdue     int `json:"overdue"`
}

// SnapshotFallbackPayload payload. Mode is "stale" when the last good
// snapshot was served, "synthetic" when nothing cached existed.
type SnapshotFallbackPayload struct {
	Mode  string `json:"mode"`
	Cause string `json:"cause"`
}

// InactivationFlaggedPayload payload.
type InactivationFlaggedPayload struct {
	TicketID string `json:"ticket_id"`
	Subject  string `json:"subject"`
}

package sla

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-dashboard/internal/calendar"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

// 2025-06-02 is a Monday; the default week yields 525 working minutes per day.
var (
	t0        = time.Date(2025, 6, 2, 7, 45, 0, 0, time.UTC)
	wednesday = time.Date(2025, 6, 4, 7, 45, 0, 0, time.UTC)
	nextMon   = time.Date(2025, 6, 9, 7, 45, 0, 0, time.UTC)
)

func newTestTracker() *Tracker {
	return NewTracker(calendar.DefaultWorkWeek(), nil)
}

func transferAction(at time.Time, from, to string) normalize.RawAction {
	return normalize.RawAction{
		Type:        1,
		CreatedDate: at.Format(time.RFC3339),
		Description: "Equipe do ticket alterada de '" + from + "' para '" + to + "'",
	}
}

func TestComputeTeamTimeTransferScenario(t *testing.T) {
	tracker := newTestTracker()

	ticket := TicketWithActions{
		ID:        "555",
		OwnerTeam: "Team B",
		CreatedAt: t0,
		ClosedAt:  &nextMon,
		Actions: []normalize.RawAction{
			transferAction(wednesday, "Team A", "Team B"),
		},
	}

	span := tracker.ComputeTeamTime(ticket, nextMon)

	require.Len(t, span.PerTeam, 2)
	assert.Equal(t, "Team A", span.PerTeam[0].Team)
	assert.Equal(t, 2*525, span.PerTeam[0].Minutes)
	assert.Equal(t, "Team B", span.PerTeam[1].Team)
	assert.Equal(t, 3*525, span.PerTeam[1].Minutes)
	assert.Equal(t, 5*525, span.TotalMinutes)
}

func TestComputeTeamTimeNoActions(t *testing.T) {
	tracker := newTestTracker()

	ticket := TicketWithActions{OwnerTeam: "Sustentação", CreatedAt: t0}
	span := tracker.ComputeTeamTime(ticket, wednesday)

	require.Len(t, span.PerTeam, 1)
	assert.Equal(t, "Sustentação", span.PerTeam[0].Team)
	assert.Equal(t, 2*525, span.PerTeam[0].Minutes)
	assert.Equal(t, span.PerTeam[0].Minutes, span.TotalMinutes)
}

func TestComputeTeamTimeSameTeamTransferIsNoOp(t *testing.T) {
	tracker := newTestTracker()

	ticket := TicketWithActions{
		OwnerTeam: "Team A",
		CreatedAt: t0,
		ClosedAt:  &nextMon,
		Actions: []normalize.RawAction{
			transferAction(wednesday, "Team A", "Team A"),
		},
	}
	span := tracker.ComputeTeamTime(ticket, nextMon)

	require.Len(t, span.PerTeam, 1)
	assert.Equal(t, 5*525, span.PerTeam[0].Minutes)
}

func TestComputeTeamTimeIgnoresUnrecognizedActions(t *testing.T) {
	tracker := newTestTracker()

	ticket := TicketWithActions{
		OwnerTeam: "Team A",
		CreatedAt: t0,
		ClosedAt:  &wednesday,
		Actions: []normalize.RawAction{
			{Type: 1, CreatedDate: t0.Add(time.Hour).Format(time.RFC3339), Description: "Atendimento iniciado"},
			{Type: 2, CreatedDate: t0.Add(2 * time.Hour).Format(time.RFC3339), Description: "Equipe do ticket alterada de 'Team A' para 'Team B'"},
			{Type: 1, CreatedDate: "not a date", Description: "Equipe do ticket alterada de 'Team A' para 'Team B'"},
		},
	}
	span := tracker.ComputeTeamTime(ticket, wednesday)

	// A public note and a malformed timestamp never register transitions.
	require.Len(t, span.PerTeam, 1)
	assert.Equal(t, "Team A", span.PerTeam[0].Team)
	assert.Equal(t, 2*525, span.TotalMinutes)
}

func TestComputeTeamTimeDerivesInitialTeamFromFirstTransfer(t *testing.T) {
	tracker := newTestTracker()

	// Current owner team is already the destination; attribution still
	// starts at the team the first transfer left.
	ticket := TicketWithActions{
		OwnerTeam: "Team B",
		CreatedAt: t0,
		Actions: []normalize.RawAction{
			transferAction(wednesday, "Team A", "Team B"),
		},
	}
	span := tracker.ComputeTeamTime(ticket, wednesday)

	require.Len(t, span.PerTeam, 2)
	assert.Equal(t, "Team A", span.PerTeam[0].Team)
	assert.Equal(t, 2*525, span.PerTeam[0].Minutes)
	assert.Equal(t, 0, span.PerTeam[1].Minutes)
}

func TestClassifierCustomPattern(t *testing.T) {
	classifier := NewClassifier(TransferPattern{
		Pattern: regexp.MustCompile(`moved queue from "([^"]+)" to "([^"]+)"`),
	})
	ev := classifier.Classify(normalize.RawAction{
		Type:        2,
		CreatedDate: "2025-06-02T10:00:00Z",
		Description: `moved queue from "N1" to "N2"`,
	})

	assert.Equal(t, EventTeamTransfer, ev.Kind)
	assert.Equal(t, "N1", ev.FromTeam)
	assert.Equal(t, "N2", ev.ToTeam)
}

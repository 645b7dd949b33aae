package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

var today = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func ticket(id string, base domain.BaseStatus, urgency, owner string) domain.CanonicalTicket {
	return domain.CanonicalTicket{
		ID:          id,
		BaseStatus:  base,
		Status:      string(base),
		Urgency:     urgency,
		Owner:       owner,
		OwnerTeam:   "Sustentação",
		CreatedDate: today.AddDate(0, 0, -3),
		DueCategory: domain.DueCategoryOK,
	}
}

func sampleTickets() []domain.CanonicalTicket {
	overdue := ticket("4", domain.BaseStatusStopped, "Alta", "Agente C")
	overdue.Overdue = true
	overdue.DueCategory = domain.DueCategoryOverdue

	canceled := ticket("5", domain.BaseStatusCanceled, "Baixa", "Agente A")
	canceled.Canceled = true

	lastMonth := ticket("6", domain.BaseStatusNew, "Média", "Agente B")
	lastMonth.CreatedDate = today.AddDate(0, -2, 0)

	return []domain.CanonicalTicket{
		ticket("1", domain.BaseStatusNew, "Crítica", "Agente A"),
		ticket("2", domain.BaseStatusInAttendance, "Média", "Agente B"),
		ticket("3", domain.BaseStatusClosed, "Alta", "Agente A"),
		overdue,
		canceled,
		lastMonth,
	}
}

func TestAggregateCounts(t *testing.T) {
	snap := Aggregate(sampleTickets(), today, Options{})

	assert.Equal(t, 5, snap.Counts[domain.CountTotal])
	assert.Equal(t, 2, snap.Counts[domain.CountNew])
	assert.Equal(t, 1, snap.Counts[domain.CountInAttendance])
	assert.Equal(t, 1, snap.Counts[domain.CountStopped])
	assert.Equal(t, 1, snap.Counts[domain.CountClosed])
	assert.Equal(t, 1, snap.Counts[domain.CountOverdue])
	assert.Equal(t, 4, snap.Counts[domain.CountOpenTickets])
	assert.Equal(t, 5, snap.Counts[domain.CountMonthOpenedAll])
}

func TestAggregateBreakdownsExcludeInactive(t *testing.T) {
	snap := Aggregate(sampleTickets(), today, Options{})

	// Closed ticket "3" and canceled ticket "5" are out.
	assert.Equal(t, map[string]int{"Crítica": 1, "Média": 2, "Alta": 1}, snap.CountsPerUrgency)
	assert.Equal(t, map[string]int{"Agente A": 1, "Agente B": 2, "Agente C": 1}, snap.CountsPerOwner)
}

func TestAggregatePreservesOrder(t *testing.T) {
	snap := Aggregate(sampleTickets(), today, Options{})

	require.Len(t, snap.Tickets, 6)
	assert.Equal(t, "1", snap.Tickets[0].ID)
	assert.Equal(t, "6", snap.Tickets[5].ID)
}

func TestAggregateIsIdempotent(t *testing.T) {
	first := Aggregate(sampleTickets(), today, Options{})
	second := Aggregate(sampleTickets(), today, Options{})

	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.CountsPerUrgency, second.CountsPerUrgency)
	assert.Equal(t, first.CountsPerOwner, second.CountsPerOwner)
	assert.Equal(t, first.Tickets, second.Tickets)
}

func TestAggregateOwnerFilterHappensBeforeCounting(t *testing.T) {
	// Accent-insensitive match against "Agente A".
	snap := Aggregate(sampleTickets(), today, Options{Owner: "AGENTE a"})

	assert.Equal(t, 2, snap.Counts[domain.CountTotal])
	assert.Equal(t, 1, snap.Counts[domain.CountNew])
	assert.Equal(t, 1, snap.Counts[domain.CountClosed])
	require.Len(t, snap.Tickets, 3)
	assert.Equal(t, map[string]int{"Crítica": 1}, snap.CountsPerUrgency)
}

func TestAggregateUnknownOwnerYieldsEmptySnapshot(t *testing.T) {
	snap := Aggregate(sampleTickets(), today, Options{Owner: "Nobody"})

	for key, value := range snap.Counts {
		assert.Zero(t, value, key)
	}
	assert.Empty(t, snap.Tickets)
	assert.Empty(t, snap.CountsPerUrgency)
	assert.Empty(t, snap.CountsPerOwner)
}

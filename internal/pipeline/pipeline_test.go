package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
	"github.com/spec-kit/helpdesk-dashboard/internal/observability"
)

var refTime = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func newTestPipeline(dispatcher events.Dispatcher) (*Pipeline, *observability.Metrics) {
	metrics := observability.NewMetrics()
	p := New(Dependencies{
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Now:        func() time.Time { return refTime },
	})
	return p, metrics
}

func fetchOK(raws ...normalize.RawTicket) FetchFunc {
	return func(context.Context) ([]normalize.RawTicket, error) {
		return raws, nil
	}
}

func fetchFail(ctx context.Context) ([]normalize.RawTicket, error) {
	return nil, errors.New("connection refused")
}

func TestRefreshSuccessStoresSnapshot(t *testing.T) {
	p, metrics := newTestPipeline(nil)

	raw := normalize.RawTicket{
		ID:         "10",
		Subject:    "Erro na emissão",
		BaseStatus: "New",
		Status:     "Novo",
		OwnerTeam:  "Sustentação",
	}
	snap := p.Refresh(context.Background(), "Sustentação", fetchOK(raw))

	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.Counts[domain.CountTotal])
	assert.False(t, snap.Synthetic)
	assert.EqualValues(t, 1, metrics.RefreshCount("Sustentação", observability.RefreshOutcomeOK))

	cached := p.Snapshot(context.Background(), "Sustentação")
	require.NotNil(t, cached)
	assert.Same(t, snap, cached)
}

func TestRefreshFailureServesLastGoodSnapshot(t *testing.T) {
	p, metrics := newTestPipeline(nil)

	first := p.Refresh(context.Background(), "Sustentação", fetchOK(normalize.RawTicket{ID: "10", BaseStatus: "New"}))
	second := p.Refresh(context.Background(), "Sustentação", fetchFail)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, metrics.RefreshCount("Sustentação", observability.RefreshOutcomeStale))
}

func TestRefreshFailureWithoutCacheServesSyntheticData(t *testing.T) {
	p, metrics := newTestPipeline(nil)

	snap := p.Refresh(context.Background(), "Sustentação", fetchFail)

	require.NotNil(t, snap)
	assert.True(t, snap.Synthetic)
	require.Len(t, snap.Tickets, 4)
	assert.Equal(t, "1001", snap.Tickets[0].ID)
	assert.Equal(t, "1004", snap.Tickets[3].ID)
	assert.Equal(t, 4, snap.Counts[domain.CountTotal])
	assert.Equal(t, 4, snap.Counts[domain.CountOpenTickets])
	assert.Equal(t, 0, snap.Counts[domain.CountOverdue])
	assert.EqualValues(t, 1, metrics.RefreshCount("Sustentação", observability.RefreshOutcomeSynthetic))
}

func TestRefreshPublishesInactivationAlerts(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var flagged []events.InactivationFlaggedPayload
	dispatcher.Subscribe(events.EventInactivationFlagged, func(_ context.Context, ev events.Event) error {
		flagged = append(flagged, ev.Payload.(events.InactivationFlaggedPayload))
		return nil
	})

	p, _ := newTestPipeline(dispatcher)
	p.Refresh(context.Background(), "Sustentação", fetchOK(
		normalize.RawTicket{ID: "1", Subject: "Inativação Movidesk - Cliente X", BaseStatus: "New"},
		normalize.RawTicket{ID: "2", Subject: "Outro assunto", BaseStatus: "New"},
	))

	require.Len(t, flagged, 1)
	assert.Equal(t, "1", flagged[0].TicketID)
}

func TestMemoryCacheIsolatesTeams(t *testing.T) {
	cache := NewMemoryCache()
	snap := &domain.Snapshot{Counts: map[string]int{domain.CountTotal: 1}}

	require.NoError(t, cache.Set(context.Background(), "N1", snap))

	got, err := cache.Get(context.Background(), "N1")
	require.NoError(t, err)
	assert.Same(t, snap, got)

	other, err := cache.Get(context.Background(), "N2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

// Package pipeline runs the fetch-and-aggregate flow and keeps it resilient
// to upstream failure through a last-known-good cache and synthetic fallback.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/aggregate"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
	"github.com/spec-kit/helpdesk-dashboard/internal/observability"
)

// FetchFunc obtains the raw tickets for one team from the upstream API.
// A fixed timeout is the caller's concern; the pipeline only sees success or
// failure.
type FetchFunc func(ctx context.Context) ([]normalize.RawTicket, error)

// Pipeline normalizes, classifies and aggregates tickets, caching the result.
type Pipeline struct {
	normalizer *normalize.Normalizer
	cache      SnapshotCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	now        func() time.Time
}

// Dependencies bundles pipeline collaborators.
type Dependencies struct {
	Normalizer *normalize.Normalizer
	Cache      SnapshotCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Now        func() time.Time
}

// New constructs a pipeline.
func New(deps Dependencies) *Pipeline {
	if deps.Normalizer == nil {
		deps.Normalizer = normalize.NewNormalizer()
	}
	if deps.Cache == nil {
		deps.Cache = NewMemoryCache()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Pipeline{
		normalizer: deps.Normalizer,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        deps.Now,
	}
}

// Refresh runs one fetch-and-aggregate cycle for a team. It always returns a
// valid snapshot: fresh on success, the last good one on upstream failure,
// synthetic when nothing was ever cached. Errors never escape.
func (p *Pipeline) Refresh(ctx context.Context, team string, fetch FetchFunc) *domain.Snapshot {
	today := p.now()

	raws, err := fetch(ctx)
	if err != nil {
		return p.fallback(ctx, team, today, err)
	}

	tickets := make([]domain.CanonicalTicket, 0, len(raws))
	for i := range raws {
		tickets = append(tickets, p.normalizer.Canonicalize(&raws[i], today))
	}

	snapshot := aggregate.Aggregate(tickets, today, aggregate.Options{})
	if err := p.cache.Set(ctx, team, snapshot); err != nil {
		p.logger.Warn("snapshot cache write failed", zap.String("team", team), zap.Error(err))
	}

	p.metrics.RecordRefresh(team, observability.RefreshOutcomeOK)
	p.publishRefresh(ctx, team, snapshot)
	p.publishInactivationAlerts(ctx, team, tickets)
	return snapshot
}

// Snapshot returns the cached snapshot for a team without fetching, nil when
// nothing is cached.
func (p *Pipeline) Snapshot(ctx context.Context, team string) *domain.Snapshot {
	cached, err := p.cache.Get(ctx, team)
	if err != nil {
		p.logger.Warn("snapshot cache read failed", zap.String("team", team), zap.Error(err))
		return nil
	}
	return cached
}

func (p *Pipeline) fallback(ctx context.Context, team string, today time.Time, cause error) *domain.Snapshot {
	p.logger.Warn("upstream fetch failed", zap.String("team", team), zap.Error(cause))

	if cached := p.Snapshot(ctx, team); cached != nil {
		p.metrics.RecordRefresh(team, observability.RefreshOutcomeStale)
		p.publish(ctx, events.Event{
			Type:    events.EventSnapshotFallback,
			Team:    team,
			Payload: events.SnapshotFallbackPayload{Mode: "stale", Cause: cause.Error()},
		})
		return cached
	}

	p.metrics.RecordRefresh(team, observability.RefreshOutcomeSynthetic)
	p.publish(ctx, events.Event{
		Type:    events.EventSnapshotFallback,
		Team:    team,
		Payload: events.SnapshotFallbackPayload{Mode: "synthetic", Cause: cause.Error()},
	})
	return SyntheticSnapshot(today)
}

func (p *Pipeline) publishRefresh(ctx context.Context, team string, snapshot *domain.Snapshot) {
	p.publish(ctx, events.Event{
		Type: events.EventSnapshotRefreshed,
		Team: team,
		Payload: events.SnapshotRefreshedPayload{
			TicketCount: len(snapshot.Tickets),
			Overdue:     snapshot.Counts[domain.CountOverdue],
		},
	})
}

// publishInactivationAlerts flags tickets whose searchable text carries both
// inactivation keywords, for the alerting collaborator.
func (p *Pipeline) publishInactivationAlerts(ctx context.Context, team string, tickets []domain.CanonicalTicket) {
	for i := range tickets {
		t := &tickets[i]
		if !strings.Contains(t.SearchText, "inativacao") || !strings.Contains(t.SearchText, "movidesk") {
			continue
		}
		p.publish(ctx, events.Event{
			Type:    events.EventInactivationFlagged,
			Team:    team,
			Payload: events.InactivationFlaggedPayload{TicketID: t.ID, Subject: t.Subject},
		})
	}
}

func (p *Pipeline) publish(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = p.now()
	_ = p.dispatcher.Publish(ctx, event)
}

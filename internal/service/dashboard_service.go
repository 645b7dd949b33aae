package service

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/aggregate"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
	"github.com/spec-kit/helpdesk-dashboard/internal/pipeline"
)

// TicketSource fetches raw tickets for a team from the upstream API.
type TicketSource interface {
	Configured() bool
	ListTeamTickets(ctx context.Context, team string) ([]normalize.RawTicket, error)
}

// DashboardService produces the aggregated dashboard payload for a team.
type DashboardService struct {
	source TicketSource
	pipe   *pipeline.Pipeline
	now    func() time.Time
}

// NewDashboardService constructs the service.
func NewDashboardService(source TicketSource, pipe *pipeline.Pipeline) *DashboardService {
	return &DashboardService{source: source, pipe: pipe, now: time.Now}
}

// Snapshot returns the current snapshot for a team, refreshing it from the
// upstream API. The result is always a valid payload; failures degrade to
// the last good snapshot or synthetic data inside the pipeline. An owner
// name, when given, restricts the view to that assignee's subset.
func (s *DashboardService) Snapshot(ctx context.Context, team, owner string) *domain.Snapshot {
	snap := s.Refresh(ctx, team)
	if owner == "" {
		return snap
	}
	// Re-aggregate the cached ticket list: filtering happens before
	// counting, so totals stay consistent for the owner's subset.
	return aggregate.Aggregate(snap.Tickets, s.now(), aggregate.Options{Owner: owner})
}

// Refresh runs one pipeline cycle for a team.
func (s *DashboardService) Refresh(ctx context.Context, team string) *domain.Snapshot {
	if !s.source.Configured() {
		// No API token; the dashboard runs on deterministic placeholder data.
		if cached := s.pipe.Snapshot(ctx, team); cached != nil {
			return cached
		}
		return pipeline.SyntheticSnapshot(s.now())
	}
	return s.pipe.Refresh(ctx, team, func(ctx context.Context) ([]normalize.RawTicket, error) {
		return s.source.ListTeamTickets(ctx, team)
	})
}

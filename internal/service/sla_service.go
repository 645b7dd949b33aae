package service

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
	"github.com/spec-kit/helpdesk-dashboard/internal/sla"
)

// TicketDetailSource fetches one ticket with its audit-action log.
type TicketDetailSource interface {
	GetTicketWithActions(ctx context.Context, id string) (*normalize.RawTicket, error)
}

// TeamSLABreakdown is the per-ticket team time report.
type TeamSLABreakdown struct {
	TicketID        string               `json:"ticketId"`
	Subject         string               `json:"subject"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	ClosedAt        *time.Time           `json:"closedAt"`
	SLAPerTeam      []domain.TeamMinutes `json:"slaPerTeam"`
	SLATotalMinutes int                  `json:"slaTotalMinutes"`
}

// SLAService computes per-team elapsed business time for single tickets.
type SLAService struct {
	source  TicketDetailSource
	tracker *sla.Tracker
	now     func() time.Time
}

// NewSLAService constructs the service.
func NewSLAService(source TicketDetailSource, tracker *sla.Tracker) *SLAService {
	return &SLAService{source: source, tracker: tracker, now: time.Now}
}

// Breakdown fetches the ticket and replays its action log.
func (s *SLAService) Breakdown(ctx context.Context, ticketID string) (*TeamSLABreakdown, error) {
	raw, err := s.source.GetTicketWithActions(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	createdAt, _ := normalize.ParseAnyDate(raw.CreatedDate)
	var closedAt *time.Time
	if closed, ok := normalize.ParseAnyDate(raw.ClosedIn); ok {
		closedAt = &closed
	}

	span := s.tracker.ComputeTeamTime(sla.TicketWithActions{
		ID:        raw.ID.String(),
		Subject:   raw.Subject,
		Status:    raw.Status,
		OwnerTeam: raw.OwnerTeam,
		CreatedAt: createdAt,
		ClosedAt:  closedAt,
		Actions:   raw.Actions,
	}, s.now())

	return &TeamSLABreakdown{
		TicketID:        raw.ID.String(),
		Subject:         raw.Subject,
		Status:          raw.Status,
		CreatedAt:       createdAt,
		ClosedAt:        closedAt,
		SLAPerTeam:      span.PerTeam,
		SLATotalMinutes: span.TotalMinutes,
	}, nil
}

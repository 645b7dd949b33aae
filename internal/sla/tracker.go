package sla

import (
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/calendar"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

// TicketWithActions is the tracker input: the ticket's lifecycle anchors plus
// its ordered audit-action log.
type TicketWithActions struct {
	ID        string
	Subject   string
	Status    string
	OwnerTeam string
	CreatedAt time.Time
	ClosedAt  *time.Time
	Actions   []normalize.RawAction
}

// Tracker attributes elapsed business minutes to the teams a ticket passed
// through.
type Tracker struct {
	week       calendar.WorkWeek
	classifier *Classifier
}

// NewTracker builds a tracker over the given work week and classifier.
func NewTracker(week calendar.WorkWeek, classifier *Classifier) *Tracker {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Tracker{week: week, classifier: classifier}
}

// replayState is the fold state: the team currently owning the ticket and
// when its stage began.
type replayState struct {
	team  string
	since time.Time
}

// ComputeTeamTime replays the action log and returns the per-team business
// minutes plus the grand total. A ticket with no recognized transfers
// degenerates to a single span from creation to close (or now), attributed
// to the original team.
func (t *Tracker) ComputeTeamTime(ticket TicketWithActions, now time.Time) domain.TeamTimeSpan {
	events := t.replayEvents(ticket)

	acc := newTeamAccumulator()
	state := replayState{since: ticket.CreatedAt}

	for _, ev := range events {
		switch ev.Kind {
		case EventCreation:
			state = replayState{team: ev.ToTeam, since: ev.At}
		case EventTeamTransfer:
			// A transfer to the same team must not reset the stage or
			// double-count.
			if ev.ToTeam == state.team {
				continue
			}
			acc.add(state.team, t.week.WorkingMinutesBetween(state.since, ev.At))
			state = replayState{team: ev.ToTeam, since: ev.At}
		}
	}

	end := now
	if ticket.ClosedAt != nil {
		end = *ticket.ClosedAt
	}
	acc.add(state.team, t.week.WorkingMinutesBetween(state.since, end))

	return acc.span()
}

// replayEvents classifies the action log and seeds it with the creation
// event. The team at creation is reconstructed from the first transfer's
// from-team; without transfers the current owning team is all we have.
func (t *Tracker) replayEvents(ticket TicketWithActions) []Event {
	classified := make([]Event, 0, len(ticket.Actions))
	for _, action := range ticket.Actions {
		ev := t.classifier.Classify(action)
		if ev.Kind == EventTeamTransfer {
			classified = append(classified, ev)
		}
	}

	initialTeam := ticket.OwnerTeam
	if len(classified) > 0 && classified[0].FromTeam != "" {
		initialTeam = classified[0].FromTeam
	}

	events := make([]Event, 0, len(classified)+1)
	events = append(events, Event{Kind: EventCreation, At: ticket.CreatedAt, ToTeam: initialTeam})
	return append(events, classified...)
}

// teamAccumulator keeps per-team minutes in first-appearance order.
type teamAccumulator struct {
	minutes map[string]int
	order   []string
}

func newTeamAccumulator() *teamAccumulator {
	return &teamAccumulator{minutes: make(map[string]int)}
}

func (a *teamAccumulator) add(team string, minutes int) {
	if _, seen := a.minutes[team]; !seen {
		a.order = append(a.order, team)
	}
	a.minutes[team] += minutes
}

func (a *teamAccumulator) span() domain.TeamTimeSpan {
	span := domain.TeamTimeSpan{PerTeam: make([]domain.TeamMinutes, 0, len(a.order))}
	for _, team := range a.order {
		span.PerTeam = append(span.PerTeam, domain.TeamMinutes{Team: team, Minutes: a.minutes[team]})
		span.TotalMinutes += a.minutes[team]
	}
	return span
}

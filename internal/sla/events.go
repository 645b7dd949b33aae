// Package sla reconstructs elapsed working time per owning team by replaying
// a ticket's audit-action log.
package sla

import (
	"regexp"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

// EventKind tags the recognized audit-event kinds.
type EventKind int

const (
	// EventOther covers every action that does not affect team attribution.
	EventOther EventKind = iota
	// EventCreation opens the first attribution span.
	EventCreation
	// EventTeamTransfer moves the ticket to another team.
	EventTeamTransfer
)

// Event is one recognized entry of the replayed audit trail.
type Event struct {
	Kind     EventKind
	At       time.Time
	FromTeam string
	ToTeam   string
}

// TransferPattern recognizes a team-reassignment action. The regexp must
// capture the previous and the new team name, in that order. Zero ActionType
// or Origin match any value.
type TransferPattern struct {
	ActionType int
	Origin     int
	Pattern    *regexp.Regexp
}

// DefaultTransferPatterns covers the system-generated transfer notes the
// provider is known to emit. The phrasing is provider- and locale-specific,
// so deployments can inject their own list.
func DefaultTransferPatterns() []TransferPattern {
	return []TransferPattern{
		{ActionType: 1, Pattern: regexp.MustCompile(`(?i)equipe do ticket alterada de '([^']*)' para '([^']*)'`)},
		{ActionType: 1, Pattern: regexp.MustCompile(`(?i)ticket team changed from '([^']*)' to '([^']*)'`)},
	}
}

// Classifier turns raw audit actions into tagged events.
type Classifier struct {
	patterns []TransferPattern
}

// NewClassifier builds a classifier; with no patterns the defaults apply.
func NewClassifier(patterns ...TransferPattern) *Classifier {
	if len(patterns) == 0 {
		patterns = DefaultTransferPatterns()
	}
	return &Classifier{patterns: patterns}
}

// Classify maps a raw action to an event. Actions with malformed timestamps
// or descriptions that match no pattern classify as EventOther; they must
// never fail the replay.
func (c *Classifier) Classify(action normalize.RawAction) Event {
	at, ok := normalize.ParseAnyDate(action.CreatedDate)
	if !ok {
		return Event{Kind: EventOther}
	}
	for _, p := range c.patterns {
		if p.ActionType != 0 && p.ActionType != action.Type {
			continue
		}
		if p.Origin != 0 && p.Origin != action.Origin {
			continue
		}
		m := p.Pattern.FindStringSubmatch(action.Description)
		if len(m) != 3 {
			continue
		}
		return Event{Kind: EventTeamTransfer, At: at, FromTeam: m[1], ToTeam: m[2]}
	}
	return Event{Kind: EventOther, At: at}
}

// Package normalize turns heterogeneous raw ticket payloads into the
// canonical shape consumed by the aggregation pipeline.
package normalize

import (
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// forecastExtractor attempts to pull a solution-forecast date out of a raw
// ticket. Extractors run in priority order; the first hit wins.
type forecastExtractor func(*Normalizer, *RawTicket) (time.Time, bool)

// DefaultForecastSynonyms are the known labels for the "solution forecast"
// custom field across providers and language variants, already folded.
var DefaultForecastSynonyms = []string{
	"previsao de solucao",
	"previsao solucao",
	"previsao",
	"solution forecast",
	"forecast",
	"sla solucao",
}

var baseStatuses = map[string]domain.BaseStatus{
	"New":          domain.BaseStatusNew,
	"InAttendance": domain.BaseStatusInAttendance,
	"Stopped":      domain.BaseStatusStopped,
	"Closed":       domain.BaseStatusClosed,
	"Resolved":     domain.BaseStatusResolved,
	"Canceled":     domain.BaseStatusCanceled,
	"Cancelled":    domain.BaseStatusCanceled,
}

// Normalizer converts raw tickets to canonical ones. Synonym lists are
// injectable so new providers can be covered without code changes.
type Normalizer struct {
	forecastSynonyms []string
	extractors       []forecastExtractor
}

// NewNormalizer builds a normalizer with the default extractor chain.
func NewNormalizer(forecastSynonyms ...string) *Normalizer {
	if len(forecastSynonyms) == 0 {
		forecastSynonyms = DefaultForecastSynonyms
	}
	return &Normalizer{
		forecastSynonyms: forecastSynonyms,
		extractors: []forecastExtractor{
			(*Normalizer).forecastFromSLAField,
			(*Normalizer).forecastFromCustomFields,
		},
	}
}

// Normalize extracts the canonical record from a raw payload. Due-date
// classification is applied separately; see Canonicalize.
func (n *Normalizer) Normalize(raw *RawTicket) domain.CanonicalTicket {
	ticket := domain.CanonicalTicket{
		ID:         raw.ID.String(),
		Subject:    raw.Subject,
		Urgency:    raw.Urgency,
		BaseStatus: baseStatuses[raw.BaseStatus],
		Status:     raw.Status,
		OwnerTeam:  raw.OwnerTeam,
		Owner:      domain.OwnerUnassigned,
	}

	if ticket.Urgency == "" {
		ticket.Urgency = domain.UrgencyUndefined
	}
	if ticket.Status == "" {
		ticket.Status = domain.StatusUndefined
	}
	if ticket.OwnerTeam == "" {
		ticket.OwnerTeam = domain.TeamUndefined
	}
	if raw.Owner != nil && raw.Owner.BusinessName != "" {
		ticket.Owner = raw.Owner.BusinessName
	}

	if created, ok := ParseAnyDate(raw.CreatedDate); ok {
		ticket.CreatedDate = created
	}

	ticket.Canceled = isCanceled(raw)

	if forecast, ok := n.ExtractForecast(raw); ok {
		iso := forecast.Format(ISODate)
		ticket.ForecastDate = &iso
	}

	tags := strings.Join(raw.Tags, " ")
	ticket.SearchText = FoldJoin(raw.Subject, raw.Status, raw.Category, raw.Theme, raw.Description, tags)

	return ticket
}

// Canonicalize normalizes a raw ticket and classifies its due date against
// the given reference date.
func (n *Normalizer) Canonicalize(raw *RawTicket, today time.Time) domain.CanonicalTicket {
	ticket := n.Normalize(raw)
	due := ClassifyDue(ticket.ForecastDate, ticket.IsInactive(), today)
	ticket.Overdue = due.Overdue
	ticket.DaysUntilDue = due.DaysUntilDue
	ticket.DueCategory = due.Category
	return ticket
}

// ExtractForecast runs the extractor chain and returns the first parseable
// forecast date, truncated to a calendar date.
func (n *Normalizer) ExtractForecast(raw *RawTicket) (time.Time, bool) {
	for _, extract := range n.extractors {
		if forecast, ok := extract(n, raw); ok {
			return DateOnly(forecast), true
		}
	}
	return time.Time{}, false
}

func (n *Normalizer) forecastFromSLAField(raw *RawTicket) (time.Time, bool) {
	return ParseAnyDate(raw.SLASolutionDate)
}

func (n *Normalizer) forecastFromCustomFields(raw *RawTicket) (time.Time, bool) {
	for _, pair := range raw.customFieldPairs() {
		label := Fold(pair.displayLabel())
		if label == "" {
			continue
		}
		for _, synonym := range n.forecastSynonyms {
			if !strings.Contains(label, synonym) {
				continue
			}
			if forecast, ok := ParseAnyDate(pair.displayValue()); ok {
				return forecast, true
			}
		}
	}
	return time.Time{}, false
}

// A ticket counts as canceled on the Canceled lifecycle code or when its
// free-text status mentions cancellation, however the upstream spells it.
func isCanceled(raw *RawTicket) bool {
	if baseStatuses[raw.BaseStatus] == domain.BaseStatusCanceled {
		return true
	}
	return strings.Contains(Fold(raw.Status), "cancel")
}

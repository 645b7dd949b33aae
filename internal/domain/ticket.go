package domain

import "time"

// BaseStatus enumerates the provider lifecycle codes for tickets.
type BaseStatus string

const (
	BaseStatusNew          BaseStatus = "New"
	BaseStatusInAttendance BaseStatus = "InAttendance"
	BaseStatusStopped      BaseStatus = "Stopped"
	BaseStatusClosed       BaseStatus = "Closed"
	BaseStatusResolved     BaseStatus = "Resolved"
	BaseStatusCanceled     BaseStatus = "Canceled"
	BaseStatusUndefined    BaseStatus = ""
)

// DueCategory classifies how close a ticket is to its solution deadline.
type DueCategory string

const (
	DueCategoryNone    DueCategory = "none"
	DueCategoryOK      DueCategory = "ok"
	DueCategoryWarning DueCategory = "warning"
	DueCategoryOverdue DueCategory = "overdue"
)

// Sentinels applied when the upstream payload omits a field. The labels are
// the provider's own defaults so the dashboard renders them verbatim.
const (
	OwnerUnassigned  = "Não atribuído"
	TeamUndefined    = "Não definido"
	StatusUndefined  = "Não definido"
	UrgencyUndefined = "Não definida"
)

// CanonicalTicket is the normalized, provider-agnostic ticket shape used by
// the aggregation pipeline. JSON field names match the dashboard contract.
type CanonicalTicket struct {
	ID           string      `json:"id"`
	Subject      string      `json:"subject"`
	Urgency      string      `json:"urgency"`
	BaseStatus   BaseStatus  `json:"baseStatus"`
	Status       string      `json:"status"`
	Owner        string      `json:"owner"`
	OwnerTeam    string      `json:"ownerTeam"`
	CreatedDate  time.Time   `json:"createdDate"`
	ForecastDate *string     `json:"previsaoSolucao"`
	Overdue      bool        `json:"overdue"`
	DaysUntilDue *int        `json:"daysUntilDue"`
	DueCategory  DueCategory `json:"dueCategory"`
	Canceled     bool        `json:"canceled"`

	// SearchText is the concatenated, diacritic-stripped lowercase text of the
	// ticket's descriptive fields. Consumed by the inactivation alert hook,
	// never serialized to the dashboard.
	SearchText string `json:"-"`
}

// IsClosedOrResolved reports whether the ticket lifecycle finished normally.
func (t *CanonicalTicket) IsClosedOrResolved() bool {
	return t.BaseStatus == BaseStatusClosed || t.BaseStatus == BaseStatusResolved
}

// IsInactive reports whether the ticket no longer represents active workload.
func (t *CanonicalTicket) IsInactive() bool {
	return t.IsClosedOrResolved() || t.Canceled
}

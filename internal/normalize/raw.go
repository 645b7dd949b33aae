package normalize

import (
	"encoding/json"
	"strings"
)

// FlexString tolerates upstream fields delivered as string, number, boolean
// or null. Anything non-string keeps its raw JSON text.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(trimmed)
	return nil
}

// String returns the plain value.
func (f FlexString) String() string { return string(f) }

// RawOwner is the expandable owner relation of the ticket API.
type RawOwner struct {
	ID           FlexString `json:"id"`
	BusinessName string     `json:"businessName"`
}

// RawCustomFieldRef is the nested custom-field descriptor some providers use.
type RawCustomFieldRef struct {
	Label string `json:"label"`
	Title string `json:"title"`
}

// RawCustomField is one label/value pair from the ticket's custom-field list.
// Providers disagree on key names, so every known synonym is mapped.
type RawCustomField struct {
	Label            string             `json:"label"`
	Title            string             `json:"title"`
	Name             string             `json:"name"`
	CustomField      *RawCustomFieldRef `json:"customField"`
	Value            FlexString         `json:"value"`
	ValueText        FlexString         `json:"valueText"`
	Text             FlexString         `json:"text"`
	CustomFieldValue FlexString         `json:"customFieldValue"`
}

func (f RawCustomField) displayLabel() string {
	for _, candidate := range []string{f.Label, f.Title, f.Name} {
		if candidate != "" {
			return candidate
		}
	}
	if f.CustomField != nil {
		if f.CustomField.Label != "" {
			return f.CustomField.Label
		}
		return f.CustomField.Title
	}
	return ""
}

func (f RawCustomField) displayValue() string {
	for _, candidate := range []FlexString{f.Value, f.ValueText, f.Text, f.CustomFieldValue} {
		if candidate != "" {
			return candidate.String()
		}
	}
	return ""
}

// RawAction is one audit-trail entry of a ticket.
type RawAction struct {
	ID          FlexString `json:"id"`
	Type        int        `json:"type"`
	Origin      int        `json:"origin"`
	Description string     `json:"description"`
	CreatedDate string     `json:"createdDate"`
}

// RawTicket mirrors the provider payload for one ticket. Unknown fields are
// ignored; absent fields stay zero and get sentinel defaults downstream.
type RawTicket struct {
	ID                FlexString       `json:"id"`
	Subject           string           `json:"subject"`
	Urgency           string           `json:"urgency"`
	BaseStatus        string           `json:"baseStatus"`
	Status            string           `json:"status"`
	OwnerTeam         string           `json:"ownerTeam"`
	CreatedDate       string           `json:"createdDate"`
	ClosedIn          string           `json:"closedIn"`
	SLASolutionDate   string           `json:"slaSolutionDate"`
	Category          string           `json:"category"`
	Theme             string           `json:"theme"`
	Description       string           `json:"description"`
	Tags              []string         `json:"tags"`
	Owner             *RawOwner        `json:"owner"`
	CustomFieldValues []RawCustomField `json:"customFieldValues"`
	CustomFields      []RawCustomField `json:"customFields"`
	Actions           []RawAction      `json:"actions"`
}

func (t *RawTicket) customFieldPairs() []RawCustomField {
	pairs := make([]RawCustomField, 0, len(t.CustomFieldValues)+len(t.CustomFields))
	pairs = append(pairs, t.CustomFieldValues...)
	pairs = append(pairs, t.CustomFields...)
	return pairs
}

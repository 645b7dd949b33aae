package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	n := NewNormalizer()

	ticket := n.Normalize(&RawTicket{ID: "42", Subject: "Erro na emissão"})

	assert.Equal(t, "42", ticket.ID)
	assert.Equal(t, domain.OwnerUnassigned, ticket.Owner)
	assert.Equal(t, domain.TeamUndefined, ticket.OwnerTeam)
	assert.Equal(t, domain.StatusUndefined, ticket.Status)
	assert.Equal(t, domain.UrgencyUndefined, ticket.Urgency)
	assert.Equal(t, domain.BaseStatusUndefined, ticket.BaseStatus)
	assert.Nil(t, ticket.ForecastDate)
	assert.False(t, ticket.Canceled)
}

func TestNormalizeMapsOwnerRelation(t *testing.T) {
	n := NewNormalizer()

	ticket := n.Normalize(&RawTicket{
		ID:         "7",
		BaseStatus: "InAttendance",
		Status:     "Em Atendimento",
		Urgency:    "Alta",
		OwnerTeam:  "Sustentação",
		Owner:      &RawOwner{ID: "a1", BusinessName: "Agente B"},
	})

	assert.Equal(t, "Agente B", ticket.Owner)
	assert.Equal(t, "Sustentação", ticket.OwnerTeam)
	assert.Equal(t, domain.BaseStatusInAttendance, ticket.BaseStatus)
}

func TestCancellationDetection(t *testing.T) {
	n := NewNormalizer()

	cases := []struct {
		name     string
		raw      RawTicket
		canceled bool
	}{
		{"lifecycle code", RawTicket{BaseStatus: "Canceled"}, true},
		{"british spelling", RawTicket{BaseStatus: "Cancelled"}, true},
		{"free text with diacritics", RawTicket{Status: "CANCELADO pelo cliente"}, true},
		{"plain active", RawTicket{BaseStatus: "New", Status: "Novo"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.canceled, n.Normalize(&tc.raw).Canceled)
		})
	}
}

func TestForecastPrefersStructuredSLAField(t *testing.T) {
	n := NewNormalizer()

	raw := &RawTicket{
		SLASolutionDate: "2025-07-10T15:30:00Z",
		CustomFieldValues: []RawCustomField{
			{Label: "Previsão de Solução", Value: "01/01/2030"},
		},
	}
	ticket := n.Normalize(raw)

	require.NotNil(t, ticket.ForecastDate)
	assert.Equal(t, "2025-07-10", *ticket.ForecastDate)
}

func TestForecastFallsBackToCustomFieldSynonyms(t *testing.T) {
	n := NewNormalizer()

	cases := []struct {
		name string
		pair RawCustomField
		want string
	}{
		{"accented label, brazilian date", RawCustomField{Label: "Previsão de Solução", Value: "15/08/2025"}, "2025-08-15"},
		{"title key", RawCustomField{Title: "Solution Forecast", ValueText: "2025-09-02"}, "2025-09-02"},
		{"nested descriptor", RawCustomField{CustomField: &RawCustomFieldRef{Label: "SLA Solução"}, Text: "2025-10-01T08:00:00"}, "2025-10-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ticket := n.Normalize(&RawTicket{CustomFields: []RawCustomField{tc.pair}})
			require.NotNil(t, ticket.ForecastDate)
			assert.Equal(t, tc.want, *ticket.ForecastDate)
		})
	}
}

func TestForecastUnparseableValueMeansAbsent(t *testing.T) {
	n := NewNormalizer()

	ticket := n.Normalize(&RawTicket{
		CustomFieldValues: []RawCustomField{
			{Label: "Previsão de Solução", Value: "em breve"},
		},
	})
	assert.Nil(t, ticket.ForecastDate)
}

func TestSearchTextIsFoldedAndJoined(t *testing.T) {
	n := NewNormalizer()

	ticket := n.Normalize(&RawTicket{
		Subject: "Inativação Movidesk - Cliente X",
		Status:  "Novo",
		Tags:    []string{"Urgente", "Fiscal"},
	})
	assert.Contains(t, ticket.SearchText, "inativacao")
	assert.Contains(t, ticket.SearchText, "movidesk")
	assert.Contains(t, ticket.SearchText, "urgente fiscal")
}

func TestFlexStringAcceptsNumbersAndNull(t *testing.T) {
	var raw RawTicket
	payload := `{"id": 12345, "owner": {"id": null, "businessName": "Agente A"}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	assert.Equal(t, "12345", raw.ID.String())
	assert.Equal(t, "", raw.Owner.ID.String())
}

func TestParseAnyDate(t *testing.T) {
	got, ok := ParseAnyDate("03/12/2025 08:00")
	require.True(t, ok)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 3, got.Day())

	_, ok = ParseAnyDate("not a date")
	assert.False(t, ok)

	_, ok = ParseAnyDate("")
	assert.False(t, ok)
}

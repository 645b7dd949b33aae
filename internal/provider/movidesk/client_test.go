package movidesk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.MovideskConfig{
		BaseURL:        server.URL,
		Token:          "secret",
		Top:            500,
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestListTeamTicketsBuildsQuery(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"token":   r.URL.Query().Get("token"),
			"$top":    r.URL.Query().Get("$top"),
			"$filter": r.URL.Query().Get("$filter"),
			"$expand": r.URL.Query().Get("$expand"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 7, "subject": "Erro", "baseStatus": "New", "ownerTeam": "N1"}]`))
	})

	tickets, err := client.ListTeamTickets(context.Background(), "N1")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "7", tickets[0].ID.String())

	assert.Equal(t, "secret", gotQuery["token"])
	assert.Equal(t, "500", gotQuery["$top"])
	assert.Contains(t, gotQuery["$filter"], "ownerTeam eq 'N1'")
	assert.Contains(t, gotQuery["$filter"], "baseStatus eq 'Stopped'")
	assert.Contains(t, gotQuery["$expand"], "customFieldValues")
}

func TestListTeamTicketsNon2xxIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := client.ListTeamTickets(context.Background(), "N1")
	assert.Error(t, err)
}

func TestGetTicketWithActions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "123",
			"subject": "Contexto",
			"baseStatus": "InAttendance",
			"ownerTeam": "N2",
			"actions": [
				{"type": 1, "createdDate": "2025-06-04T07:45:00Z",
				 "description": "Equipe do ticket alterada de 'N1' para 'N2'"}
			]
		}`))
	})

	ticket, err := client.GetTicketWithActions(context.Background(), "123")
	require.NoError(t, err)
	require.Len(t, ticket.Actions, 1)
	assert.Equal(t, 1, ticket.Actions[0].Type)
}

func TestConfigured(t *testing.T) {
	client := NewClient(config.MovideskConfig{}, zap.NewNop())
	assert.False(t, client.Configured())
}

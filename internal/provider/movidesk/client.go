// Package movidesk talks to the Movidesk public ticket API.
package movidesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/normalize"
)

const (
	listSelect   = "id,subject,urgency,baseStatus,status,ownerTeam,createdDate,closedIn,slaSolutionDate"
	listExpand   = "owner($select=id,businessName),customFieldValues"
	detailSelect = "id,subject,urgency,baseStatus,status,ownerTeam,createdDate,closedIn"
	detailExpand = "actions"
)

// Client queries tickets scoped by owning team and active lifecycle states.
type Client struct {
	baseURL string
	token   string
	top     int
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client with the configured fixed timeout.
func NewClient(cfg config.MovideskConfig, logger *zap.Logger) *Client {
	top := cfg.Top
	if top <= 0 {
		top = 500
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		top:     top,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// Configured reports whether an API token is present. Without one the
// dashboard runs on synthetic data only.
func (c *Client) Configured() bool {
	return c.token != ""
}

// ListTeamTickets fetches the active tickets owned by a team.
func (c *Client) ListTeamTickets(ctx context.Context, team string) ([]normalize.RawTicket, error) {
	filter := fmt.Sprintf(
		"ownerTeam eq '%s' and (baseStatus eq 'New' or baseStatus eq 'InAttendance' or baseStatus eq 'Stopped')",
		team,
	)
	query := url.Values{
		"token":   {c.token},
		"$top":    {fmt.Sprintf("%d", c.top)},
		"$select": {listSelect},
		"$expand": {listExpand},
		"$filter": {filter},
	}

	var tickets []normalize.RawTicket
	if err := c.getJSON(ctx, query, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetTicketWithActions fetches one ticket including its audit-action log.
func (c *Client) GetTicketWithActions(ctx context.Context, id string) (*normalize.RawTicket, error) {
	query := url.Values{
		"token":   {c.token},
		"id":      {id},
		"$select": {detailSelect},
		"$expand": {detailExpand},
	}

	var ticket normalize.RawTicket
	if err := c.getJSON(ctx, query, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) getJSON(ctx context.Context, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("movidesk request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("movidesk non-2xx response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("movidesk status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("movidesk decode: %w", err)
	}
	return nil
}

// FetchTimeout exposes the client timeout for callers deriving contexts.
func (c *Client) FetchTimeout() time.Duration {
	return c.http.Timeout
}

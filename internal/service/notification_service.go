package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
)

// NotificationService forwards pipeline events to the alerting surface.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	http       *http.Client
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		http:       &http.Client{Timeout: 5 * time.Second},
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInactivationFlagged, n.handleInactivationFlagged)
	n.dispatcher.Subscribe(events.EventSnapshotFallback, n.handleSnapshotFallback)
}

func (n *NotificationService) handleInactivationFlagged(ctx context.Context, event events.Event) error {
	n.logger.Warn("InactivationFlagged",
		zap.String("team", event.Team),
		zap.Any("payload", event.Payload),
	)
	n.postWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleSnapshotFallback(ctx context.Context, event events.Event) error {
	n.logger.Warn("SnapshotFallback",
		zap.String("team", event.Team),
		zap.Any("payload", event.Payload),
	)
	return nil
}

func (n *NotificationService) postWebhook(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Debug("webhook delivery failed", zap.Error(err))
		return
	}
	_ = resp.Body.Close()
}

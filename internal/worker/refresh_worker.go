package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/service"
)

// RefreshWorker keeps team snapshots warm on a cron schedule, so the first
// dashboard request after an outage still hits a recent last-good snapshot.
type RefreshWorker struct {
	dashboard *service.DashboardService
	teams     []string
	spec      string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewRefreshWorker builds the worker; spec uses cron syntax, e.g. "@every 10m".
func NewRefreshWorker(dashboard *service.DashboardService, teams []string, spec string, timeout time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		dashboard: dashboard,
		teams:     teams,
		spec:      spec,
		timeout:   timeout,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start schedules the refresh job. No-op when no teams are configured.
func (w *RefreshWorker) Start() error {
	if len(w.teams) == 0 {
		w.logger.Info("no teams configured; refresh worker idle")
		return nil
	}
	if _, err := w.cron.AddFunc(w.spec, w.refreshAll); err != nil {
		return err
	}
	w.cron.Start()
	w.logger.Info("refresh worker started",
		zap.String("schedule", w.spec),
		zap.Strings("teams", w.teams),
	)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (w *RefreshWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *RefreshWorker) refreshAll() {
	for _, team := range w.teams {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		snap := w.dashboard.Refresh(ctx, team)
		cancel()

		w.logger.Debug("team snapshot refreshed",
			zap.String("team", team),
			zap.Int("tickets", len(snap.Tickets)),
			zap.Bool("synthetic", snap.Synthetic),
		)
	}
}

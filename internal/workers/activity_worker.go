package workers

import (
	"context"
	"time"

	"replink_backend/internal/email"
	"replink_backend/internal/logger"
	"replink_backend/internal/models"
)

const digestInterval = time.Hour

type activityLister interface {
	ListActivitySince(ctx context.Context, since time.Time) ([]models.SuspiciousActivityItem, error)
}

// ActivityWorker periodically emails admins a digest of new
// suspicious-activity flags. Each run covers the window since the previous
// one; an empty window sends nothing.
type ActivityWorker struct {
	activity   activityLister
	mailer     email.Provider
	adminEmail string
	lastRun    time.Time
}

func NewActivityWorker(activity activityLister, mailer email.Provider, adminEmail string) *ActivityWorker {
	return &ActivityWorker{
		activity:   activity,
		mailer:     mailer,
		adminEmail: adminEmail,
		lastRun:    time.Now().UTC(),
	}
}

// Start runs the hourly loop until the context is cancelled.
func (w *ActivityWorker) Start(ctx context.Context) {
	if w.adminEmail == "" {
		logger.Info("activity digest disabled: no admin email configured")
		return
	}

	ticker := time.NewTicker(digestInterval)
	defer ticker.Stop()

	logger.Info("activity digest worker started", "interval", digestInterval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("activity digest worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ActivityWorker) runOnce(ctx context.Context) {
	since := w.lastRun
	now := time.Now().UTC()

	items, err := w.activity.ListActivitySince(ctx, since)
	if err != nil {
		logger.WorkerLog("activity_digest", "list flags", err)
		return
	}
	w.lastRun = now

	if len(items) == 0 {
		return
	}

	subject, body := email.ActivityDigestBody(items)
	if err := w.mailer.Send(w.adminEmail, subject, body); err != nil {
		logger.WorkerLog("activity_digest", "send digest", err)
		return
	}
	logger.WorkerLog("activity_digest", "send digest", nil)
}

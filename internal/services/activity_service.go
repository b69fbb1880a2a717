package services

import (
	"context"
	"fmt"
	"time"

	"replink_backend/internal/logger"
	"replink_backend/internal/models"
)

const (
	// reportWindow is how far back the detector looks when counting a
	// rep's reports.
	reportWindow = time.Hour

	// reportThreshold is the count a rep must exceed inside the window to
	// get flagged.
	reportThreshold = 3

	evaluateTimeout = 15 * time.Second
)

type reportCounter interface {
	CountRecentByRep(ctx context.Context, repID string, since time.Time) (int, error)
}

type activityStore interface {
	Create(ctx context.Context, sa *models.SuspiciousActivity) error
	List(ctx context.Context, page int) ([]models.SuspiciousActivityItem, int, error)
	ListSince(ctx context.Context, since time.Time) ([]models.SuspiciousActivityItem, error)
}

// ActivityService runs the report-rate heuristic and serves the advisory
// flag feed. Flags never block a rep; they only inform admins.
type ActivityService struct {
	reports  reportCounter
	activity activityStore
	now      func() time.Time
}

func NewActivityService(reports reportCounter, activity activityStore) *ActivityService {
	return &ActivityService{
		reports:  reports,
		activity: activity,
		now:      time.Now,
	}
}

// Evaluate counts the rep's reports over the last hour and records a flag
// when the count exceeds the threshold.
func (s *ActivityService) Evaluate(ctx context.Context, repID string) error {
	since := s.now().UTC().Add(-reportWindow)

	count, err := s.reports.CountRecentByRep(ctx, repID, since)
	if err != nil {
		return fmt.Errorf("count recent reports: %w", err)
	}
	if count <= reportThreshold {
		return nil
	}

	flag := &models.SuspiciousActivity{
		RepID:  repID,
		Reason: fmt.Sprintf("Mass Reported in 1 hour, total:%d", count),
	}
	if err := s.activity.Create(ctx, flag); err != nil {
		return fmt.Errorf("record suspicious activity: %w", err)
	}

	logger.Warn("rep flagged for suspicious activity",
		"repId", repID,
		"reports", count,
	)
	return nil
}

// Dispatch runs Evaluate in the background. Report submission never waits on
// the detector and never fails because of it; evaluation errors are logged.
func (s *ActivityService) Dispatch(repID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), evaluateTimeout)
		defer cancel()

		if err := s.Evaluate(ctx, repID); err != nil {
			logger.WithError(err).Error("suspicious activity evaluation failed", "repId", repID)
		}
	}()
}

// ListActivity returns a page of flags for the admin feed, newest first.
func (s *ActivityService) ListActivity(ctx context.Context, page int) ([]models.SuspiciousActivityItem, int, error) {
	return s.activity.List(ctx, page)
}

// ListActivitySince returns all flags recorded after the cutoff.
func (s *ActivityService) ListActivitySince(ctx context.Context, since time.Time) ([]models.SuspiciousActivityItem, error) {
	return s.activity.ListSince(ctx, since)
}

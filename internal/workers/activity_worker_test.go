package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"replink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	items    []models.SuspiciousActivityItem
	err      error
	gotSince time.Time
}

func (f *fakeLister) ListActivitySince(_ context.Context, since time.Time) ([]models.SuspiciousActivityItem, error) {
	f.gotSince = since
	return f.items, f.err
}

type recordingMailer struct {
	sent []string // "to|subject"
	err  error
}

func (m *recordingMailer) Send(to, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func flagItem(repID, reason string) models.SuspiciousActivityItem {
	var item models.SuspiciousActivityItem
	item.RepID = repID
	item.Reason = reason
	item.CreatedAt = time.Now().UTC()
	return item
}

func TestActivityWorker_SendsDigest(t *testing.T) {
	lister := &fakeLister{items: []models.SuspiciousActivityItem{
		flagItem("rep-1", "Mass Reported in 1 hour, total:5"),
	}}
	mailer := &recordingMailer{}
	w := NewActivityWorker(lister, mailer, "admin@replink.example")

	w.runOnce(context.Background())

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0], "admin@replink.example|")
	assert.Contains(t, mailer.sent[0], "1 new flags")
}

func TestActivityWorker_EmptyWindowSendsNothing(t *testing.T) {
	lister := &fakeLister{}
	mailer := &recordingMailer{}
	w := NewActivityWorker(lister, mailer, "admin@replink.example")

	w.runOnce(context.Background())
	assert.Empty(t, mailer.sent)
}

func TestActivityWorker_WindowAdvancesAcrossRuns(t *testing.T) {
	lister := &fakeLister{}
	w := NewActivityWorker(lister, &recordingMailer{}, "admin@replink.example")

	start := w.lastRun
	w.runOnce(context.Background())
	assert.Equal(t, start, lister.gotSince)
	assert.True(t, w.lastRun.After(start) || w.lastRun.Equal(start))

	second := w.lastRun
	w.runOnce(context.Background())
	assert.Equal(t, second, lister.gotSince)
}

func TestActivityWorker_ListFailureKeepsWindow(t *testing.T) {
	lister := &fakeLister{err: errors.New("db down")}
	w := NewActivityWorker(lister, &recordingMailer{}, "admin@replink.example")

	start := w.lastRun
	w.runOnce(context.Background())

	// The window must not advance past flags we failed to read.
	assert.Equal(t, start, w.lastRun)
}

package services

import (
	"context"
	"time"

	"github.com/Frajuan18/Gym-sub000/internal/logger"
	"go.uber.org/zap"
)

type statusSource interface {
	GetStatus(ctx context.Context, publicID string) (string, error)
}

// StatusWatcher observes an assessment until it leaves pending. It
// never drives transitions itself.
type StatusWatcher struct {
	source   statusSource
	interval time.Duration
	grace    time.Duration
}

func NewStatusWatcher(source statusSource) *StatusWatcher {
	return &StatusWatcher{
		source:   source,
		interval: 30 * time.Second,
		grace:    1500 * time.Millisecond,
	}
}

// NewStatusWatcherWithTiming exists for tests and for callers that
// need a different cadence.
func NewStatusWatcherWithTiming(source statusSource, interval, grace time.Duration) *StatusWatcher {
	return &StatusWatcher{source: source, interval: interval, grace: grace}
}

// Watch checks the status immediately, then every interval while it
// stays pending. Each successful observation is passed to onStatus.
// When reviewed or completed is observed, polling stops, the grace
// period elapses, and onReady fires exactly once. Any other departure
// from pending stops polling without onReady. A failed poll is logged
// and retried on the next tick. Cancelling ctx stops everything.
func (w *StatusWatcher) Watch(ctx context.Context, publicID string, onStatus func(status string), onReady func(status string)) {
	status, done := w.observe(ctx, publicID, onStatus)
	if done {
		w.settle(ctx, status, onReady)
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, done := w.observe(ctx, publicID, onStatus)
			if done {
				ticker.Stop()
				w.settle(ctx, status, onReady)
				return
			}
		}
	}
}

// observe returns done=true once the status has left pending. A poll
// failure keeps the watcher in the pending loop.
func (w *StatusWatcher) observe(ctx context.Context, publicID string, onStatus func(status string)) (string, bool) {
	status, err := w.source.GetStatus(ctx, publicID)
	if err != nil {
		logger.Log.Warn("assessment status poll failed",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
		return "", false
	}
	if onStatus != nil {
		onStatus(status)
	}
	return status, status != "pending"
}

// settle waits the grace period and fires onReady for the two states
// that surface results.
func (w *StatusWatcher) settle(ctx context.Context, status string, onReady func(status string)) {
	if status != "reviewed" && status != "completed" {
		return
	}

	timer := time.NewTimer(w.grace)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	if onReady != nil {
		onReady(status)
	}
}

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/store"
)

// HousekeepingService periodically removes expired signup sessions and
// never-verified accounts whose window to verify has long passed, so
// abandoned signups don't squat on usernames and emails forever.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Retention is how long an unverified account keeps its identity after
	// its OTP expires before housekeeping reclaims it.
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. Interval defaults to
// 1 hour, retention to 24 hours.
func NewHousekeepingService(
	store store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     store,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop shuts the worker down, blocking until any in-progress cleanup ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once on startup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs the deletions independently; one failing won't stop the other.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping cleanup")

	if err := s.Store.SignupSessions().DeleteExpiredSignupSessions(ctx); err != nil {
		s.Logger.Error("failed to delete expired signup sessions", "error", err)
	}

	cutoff := time.Now().UTC().Add(-s.Retention)
	n, err := s.Store.Users().DeleteStaleUnverified(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete stale unverified users", "error", err)
	} else if n > 0 {
		s.Logger.Info("reclaimed stale unverified accounts", "count", n)
	}
}

package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultCheckTimeout = 5 * time.Second

// Pinger checks that a backing store answers.
type Pinger func(ctx context.Context) error

// StoreHealthJob pings the store on a cron schedule and keeps the outcome of
// the latest check for the health endpoint.
type StoreHealthJob struct {
	ping     Pinger
	schedule string
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger

	mu        sync.RWMutex
	checkedAt time.Time
	lastErr   error
}

// NewStoreHealthJob creates the check job. schedule accepts six-field cron
// expressions and descriptors such as "@every 30s".
func NewStoreHealthJob(ping Pinger, schedule string, logger *slog.Logger) *StoreHealthJob {
	return &StoreHealthJob{
		ping:     ping,
		schedule: schedule,
		timeout:  defaultCheckTimeout,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "store_health_job"),
	}
}

// Start checks once synchronously, so the first health answer is not
// "unknown" for a whole period, then schedules the following checks.
func (j *StoreHealthJob) Start() error {
	if j.ping == nil {
		return errors.New("store health job has no pinger")
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Check(context.Background())
	}); err != nil {
		return err
	}

	j.Check(context.Background())
	j.cron.Start()
	j.logger.Info("Store health job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running check to finish.
func (j *StoreHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Store health job stopped")
}

// Check pings the store once and records the outcome.
func (j *StoreHealthJob) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	err := j.ping(ctx)
	checkedAt := j.now()

	j.mu.Lock()
	previous := j.lastErr
	wasChecked := !j.checkedAt.IsZero()
	j.checkedAt = checkedAt
	j.lastErr = err
	j.mu.Unlock()

	switch {
	case err != nil:
		j.logger.ErrorContext(ctx, "Store check failed", "error", err)
	case previous != nil && wasChecked:
		j.logger.InfoContext(ctx, "Store is reachable again")
	}
}

// LastCheck returns the time and error of the latest check. A zero time means
// no check has completed yet.
func (j *StoreHealthJob) LastCheck() (time.Time, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.checkedAt, j.lastErr
}

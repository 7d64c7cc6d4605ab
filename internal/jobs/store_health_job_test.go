package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"ordertrack/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreHealthJob_UnknownBeforeFirstCheck(t *testing.T) {
	job := jobs.NewStoreHealthJob(func(context.Context) error { return nil }, "@every 1h", discardLogger())

	checkedAt, err := job.LastCheck()

	assert.True(t, checkedAt.IsZero())
	assert.NoError(t, err)
}

func TestStoreHealthJob_CheckRecordsOutcome(t *testing.T) {
	failure := errors.New("connection refused")
	var fail atomic.Bool
	job := jobs.NewStoreHealthJob(func(context.Context) error {
		if fail.Load() {
			return failure
		}
		return nil
	}, "@every 1h", discardLogger())

	job.Check(context.Background())
	first, err := job.LastCheck()
	require.NoError(t, err)
	assert.False(t, first.IsZero())

	fail.Store(true)
	job.Check(context.Background())
	second, err := job.LastCheck()
	require.ErrorIs(t, err, failure)
	assert.False(t, second.Before(first))

	fail.Store(false)
	job.Check(context.Background())
	_, err = job.LastCheck()
	assert.NoError(t, err)
}

func TestStoreHealthJob_CheckHasDeadline(t *testing.T) {
	job := jobs.NewStoreHealthJob(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		if !ok {
			return errors.New("no deadline")
		}
		return nil
	}, "@every 1h", discardLogger())

	job.Check(context.Background())

	_, err := job.LastCheck()
	assert.NoError(t, err)
}

func TestStoreHealthJob_StartChecksImmediately(t *testing.T) {
	var calls atomic.Int32
	job := jobs.NewStoreHealthJob(func(context.Context) error {
		calls.Add(1)
		return nil
	}, "@every 1h", discardLogger())

	require.NoError(t, job.Start())
	defer job.Stop()

	assert.Equal(t, int32(1), calls.Load())
	checkedAt, _ := job.LastCheck()
	assert.False(t, checkedAt.IsZero())
}

func TestStoreHealthJob_RunsOnSchedule(t *testing.T) {
	var calls atomic.Int32
	job := jobs.NewStoreHealthJob(func(context.Context) error {
		calls.Add(1)
		return nil
	}, "* * * * * *", discardLogger())

	require.NoError(t, job.Start())
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStoreHealthJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewStoreHealthJob(func(context.Context) error { return nil }, "every now and then", discardLogger())

	assert.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(func(context.Context) error { return nil }, "@every 1h", discardLogger())

	require.NoError(t, manager.StartAll())
	checkedAt, err := manager.StoreHealth().LastCheck()
	assert.NoError(t, err)
	assert.False(t, checkedAt.IsZero())

	manager.StopAll()
}

func TestJobManager_StartFailsOnBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(func(context.Context) error { return nil }, "", discardLogger())

	err := manager.StartAll()

	assert.ErrorContains(t, err, "store health job")
}

package services_test

import (
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepWithStatus(t *testing.T, name string, position int, status progress.Status) *progress.Step {
	t.Helper()
	s, err := progress.RestoreStep(kernel.NewUUID(), kernel.NewUUID(), name, position, status, "", nil, nil)
	require.NoError(t, err)
	return s
}

func TestProgressTracker_Summarize(t *testing.T) {
	tracker := services.NewProgressTracker()

	t.Run("no steps", func(t *testing.T) {
		summary := tracker.Summarize(nil)

		assert.Equal(t, 0, summary.Percentage)
		assert.Equal(t, services.StageAwaitingProduction, summary.Stage)
		assert.Equal(t, "awaiting production", summary.Description())
	})

	t.Run("one of each", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "Design", 1, progress.Completed),
			stepWithStatus(t, "Cutting", 2, progress.InProgress),
			stepWithStatus(t, "Sewing", 3, progress.Pending),
		})

		assert.Equal(t, 33, summary.Percentage)
		assert.Equal(t, services.StageInProduction, summary.Stage)
		assert.Equal(t, "Cutting", summary.CurrentStep)
		assert.Equal(t, `currently in step "Cutting"`, summary.Description())
		assert.Equal(t, 1, summary.Completed)
		assert.Equal(t, 3, summary.Total)
	})

	t.Run("all completed", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "Design", 1, progress.Completed),
			stepWithStatus(t, "Cutting", 2, progress.Completed),
		})

		assert.Equal(t, 100, summary.Percentage)
		assert.Equal(t, "production complete", summary.Description())
	})

	t.Run("all pending", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "Design", 1, progress.Pending),
			stepWithStatus(t, "Cutting", 2, progress.Pending),
		})

		assert.Equal(t, 0, summary.Percentage)
		assert.Equal(t, "awaiting production", summary.Description())
	})

	t.Run("completed steps with nothing started", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "Design", 1, progress.Completed),
			stepWithStatus(t, "Cutting", 2, progress.Pending),
		})

		assert.Equal(t, 50, summary.Percentage)
		assert.Equal(t, services.StageAwaitingProduction, summary.Stage)
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "A", 1, progress.Completed),
			stepWithStatus(t, "B", 2, progress.Completed),
			stepWithStatus(t, "C", 3, progress.Pending),
		})

		assert.Equal(t, 67, summary.Percentage)
	})

	t.Run("first in_progress by position wins", func(t *testing.T) {
		summary := tracker.Summarize([]*progress.Step{
			stepWithStatus(t, "Sewing", 3, progress.InProgress),
			stepWithStatus(t, "Cutting", 2, progress.InProgress),
			stepWithStatus(t, "Design", 1, progress.Completed),
		})

		assert.Equal(t, "Cutting", summary.CurrentStep)
	})
}

func TestProgressTracker_Plan(t *testing.T) {
	tracker := services.NewProgressTracker()
	email, err := kernel.NewEmail("email", "sales@acme.test")
	require.NoError(t, err)
	steps, err := company.ParseProcessSteps("Design\n\n  Cutting \nSewing\n")
	require.NoError(t, err)
	c, err := company.NewCompany(kernel.NewUUID(), kernel.NewUUID(), "Acme", email, "", steps)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Jane", "", "")
	require.NoError(t, err)

	t.Run("snapshots the company steps in order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), c.ID(), "PO-1", customer, "Dress", nil)
		require.NoError(t, err)

		planned, err := tracker.Plan(o, c)

		require.NoError(t, err)
		require.Len(t, planned, 3)
		for i, name := range []string{"Design", "Cutting", "Sewing"} {
			assert.Equal(t, name, planned[i].Name())
			assert.Equal(t, i+1, planned[i].Position())
			assert.Equal(t, progress.Pending, planned[i].Status())
			assert.True(t, planned[i].OrderID().IsEqual(o.ID()))
			assert.Nil(t, planned[i].StartedAt())
			assert.Nil(t, planned[i].CompletedAt())
		}
	})

	t.Run("later company edits do not touch planned steps", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), c.ID(), "PO-2", customer, "Dress", nil)
		require.NoError(t, err)
		planned, err := tracker.Plan(o, c)
		require.NoError(t, err)

		newSteps, err := company.ParseProcessSteps("Only")
		require.NoError(t, err)
		require.NoError(t, c.Update(c.Name(), c.Email(), "", newSteps))

		assert.Len(t, planned, 3)
		require.NoError(t, planned[0].Start(time.Now()))
	})

	t.Run("order of another company", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "PO-3", customer, "Dress", nil)
		require.NoError(t, err)

		planned, err := tracker.Plan(o, c)

		require.ErrorIs(t, err, services.ErrForeignOrder)
		assert.Nil(t, planned)
	})

	t.Run("nil order", func(t *testing.T) {
		_, err := tracker.Plan(nil, c)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

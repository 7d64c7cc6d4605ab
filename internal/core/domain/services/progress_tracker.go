package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
)

// ErrForeignOrder is returned by Plan when the order was placed with another company.
var ErrForeignOrder = errors.New("order does not belong to the company")

// Stage is the coarse production stage derived from an order's steps.
type Stage int

const (
	StageAwaitingProduction Stage = iota
	StageInProduction
	StageProductionComplete
)

func (s Stage) String() string {
	switch s {
	case StageInProduction:
		return "in_production"
	case StageProductionComplete:
		return "production_complete"
	default:
		return "awaiting_production"
	}
}

// ProgressSummary is the derived view of a set of steps.
type ProgressSummary struct {
	Percentage  int
	Stage       Stage
	CurrentStep string
	Completed   int
	Total       int
}

// Description returns the human readable stage summary.
func (s ProgressSummary) Description() string {
	switch s.Stage {
	case StageProductionComplete:
		return "production complete"
	case StageInProduction:
		return fmt.Sprintf("currently in step %q", s.CurrentStep)
	default:
		return "awaiting production"
	}
}

// ProgressTracker computes derived progress and plans step snapshots.
//
// Example usage:
//
//	tracker := services.NewProgressTracker()
//	steps, err := tracker.Plan(o, c)
//	...
//	summary := tracker.Summarize(steps)
//	fmt.Println(summary.Percentage, summary.Description())
type ProgressTracker struct{}

func NewProgressTracker() ProgressTracker {
	return ProgressTracker{}
}

// Summarize derives the percentage and stage of an order from its steps.
//
// The percentage is round(100 * completed / total) and 0 without steps.
// An order with no steps is awaiting production. When several steps are in
// progress the first one by position is reported. Nil steps are ignored.
func (ProgressTracker) Summarize(steps []*progress.Step) ProgressSummary {
	ordered := make([]*progress.Step, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position() < ordered[j].Position()
	})

	summary := ProgressSummary{Total: len(ordered)}
	for _, s := range ordered {
		switch s.Status() {
		case progress.Completed:
			summary.Completed++
		case progress.InProgress:
			if summary.CurrentStep == "" {
				summary.CurrentStep = s.Name()
			}
		}
	}

	if summary.Total == 0 {
		return summary
	}

	summary.Percentage = int(math.Round(100 * float64(summary.Completed) / float64(summary.Total)))
	switch {
	case summary.Completed == summary.Total:
		summary.Stage = StageProductionComplete
	case summary.CurrentStep != "":
		summary.Stage = StageInProduction
	default:
		summary.Stage = StageAwaitingProduction
	}

	return summary
}

// Plan creates the pending step snapshot for o from the current process steps
// of c, positioned 1..N in list order.
func (ProgressTracker) Plan(o *order.Order, c *company.Company) ([]*progress.Step, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !o.BelongsTo(c.ID()) {
		return nil, ErrForeignOrder
	}

	names := c.ProcessSteps().Names()
	steps := make([]*progress.Step, 0, len(names))
	for i, name := range names {
		s, err := progress.NewStep(kernel.NewUUID(), o.ID(), name, i+1)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}

	return steps, nil
}

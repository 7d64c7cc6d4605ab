package queries_test

import (
	"context"
	"time"

	"ordertrack/internal/adapters/out/postgres/companyrepo"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/progressrepo"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// seeder writes fixtures through the repositories.
type seeder struct {
	db *gorm.DB
	r  *require.Assertions
}

func (s seeder) company(ownerID kernel.UUID, name, stepsText string) *company.Company {
	email, err := kernel.NewEmail("email", "hello@"+name+".test")
	s.r.NoError(err)
	steps, err := company.ParseProcessSteps(stepsText)
	s.r.NoError(err)
	c, err := company.NewCompany(kernel.NewUUID(), ownerID, name, email, "", steps)
	s.r.NoError(err)
	s.r.NoError(companyrepo.NewGormCompanyRepository(s.db, noopTracker{}).Add(context.Background(), c))
	return c
}

// order creates an order of c with all its steps pending.
func (s seeder) order(c *company.Company, number string, createdAt time.Time) (*order.Order, []*progress.Step) {
	ctx := context.Background()
	customer, err := order.NewCustomer("Customer "+number, "", "")
	s.r.NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), c.ID(), number, customer, "Cabinet", nil)
	s.r.NoError(err)
	s.r.NoError(orderrepo.NewGormOrderRepository(s.db, noopTracker{}).Add(ctx, o))
	s.r.NoError(s.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", createdAt, o.ID().Bytes()).Error)

	steps, err := services.NewProgressTracker().Plan(o, c)
	s.r.NoError(err)
	s.r.NoError(progressrepo.NewGormProgressRepository(s.db, noopTracker{}).AddAll(ctx, steps))
	return o, steps
}

// advance moves step to target, passing through every intermediate status.
func (s seeder) advance(step *progress.Step, target progress.Status) {
	repo := progressrepo.NewGormProgressRepository(s.db, noopTracker{})
	for step.Status() != target {
		from := step.Status()
		next, ok := from.Next()
		s.r.True(ok)
		s.r.NoError(step.TransitionTo(next, time.Now()))
		s.r.NoError(repo.UpdateStatus(context.Background(), step, from))
	}
}

package commands_test

import (
	"context"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

func (m *MockCompanyRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, ownerID)
	c, _ := args.Get(0).(*company.Company)
	return c, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) AddAll(ctx context.Context, steps []*progress.Step) error {
	args := m.Called(ctx, steps)
	return args.Error(0)
}

func (m *MockProgressRepository) Get(ctx context.Context, id kernel.UUID) (*progress.Step, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*progress.Step)
	return s, args.Error(1)
}

func (m *MockProgressRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*progress.Step, error) {
	args := m.Called(ctx, id, ownerID)
	s, _ := args.Get(0).(*progress.Step)
	return s, args.Error(1)
}

func (m *MockProgressRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Step, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).([]*progress.Step)
	return s, args.Error(1)
}

func (m *MockProgressRepository) UpdateStatus(ctx context.Context, step *progress.Step, from progress.Status) error {
	args := m.Called(ctx, step, from)
	return args.Error(0)
}

func (m *MockProgressRepository) UpdateNotes(ctx context.Context, step *progress.Step) error {
	args := m.Called(ctx, step)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProgressRepository() ports.ProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCompanyUoWFactory struct{ mock.Mock }

func (m *MockCompanyUoWFactory) Create() commands.CompanyUoW {
	args := m.Called()
	return args.Get(0).(commands.CompanyUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.ProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.ProgressUoW)
}

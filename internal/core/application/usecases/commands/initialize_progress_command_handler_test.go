package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeProgressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	c := newCompany(t, ownerID, "Design\nSewing")
	o := newOrder(t, c.ID())
	cmd, err := commands.NewInitializeProgressCommand(ownerID, o.ID())
	require.NoError(t, err)

	companyRepo := new(MockCompanyRepository)
	orderRepo := new(MockOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForOwner", ctx, o.ID(), ownerID).Return(o, nil).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		progressRepo.On("ListByOrder", ctx, o.ID()).Return([]*progress.Step{}, nil).Once(),
		uow.On("CompanyRepository").Return(companyRepo).Once(),
		companyRepo.On("GetByOwner", ctx, ownerID).Return(c, nil).Once(),
		progressRepo.On("AddAll", ctx, mock.MatchedBy(func(steps []*progress.Step) bool {
			return len(steps) == 2 && steps[0].Name() == "Design" && steps[1].Position() == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeProgressCommandHandler(factory, services.NewProgressTracker())
	require.NoError(t, h.Handle(ctx, cmd))

	companyRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestInitializeProgressCommandHandler_Handle_AlreadyInitialized(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	c := newCompany(t, ownerID, "Design")
	o := newOrder(t, c.ID())
	cmd, err := commands.NewInitializeProgressCommand(ownerID, o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForOwner", ctx, o.ID(), ownerID).Return(o, nil).Once()
	uow.On("ProgressRepository").Return(progressRepo).Once()
	progressRepo.On("ListByOrder", ctx, o.ID()).Return([]*progress.Step{newStep(t, progress.Pending)}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeProgressCommandHandler(factory, services.NewProgressTracker())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
	progressRepo.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
}

func TestInitializeProgressCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewInitializeProgressCommand(ownerID, orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForOwner", ctx, orderID, ownerID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeProgressCommandHandler(factory, services.NewProgressTracker())

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

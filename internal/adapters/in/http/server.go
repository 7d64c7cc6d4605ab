package http

import (
	"context"
	"net/http"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler is satisfied by every command handler of the application.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every query handler of the application.
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// HealthReporter exposes the outcome of the last store check. A zero
// checkedAt means no check has run yet.
type HealthReporter interface {
	LastCheck() (checkedAt time.Time, err error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterCompany    CommandHandler[commands.RegisterCompanyCommand]
	CreateOrder        CommandHandler[commands.CreateOrderCommand]
	InitializeProgress CommandHandler[commands.InitializeProgressCommand]
	ChangeStepStatus   CommandHandler[commands.ChangeStepStatusCommand]
	UpdateStepNotes    CommandHandler[commands.UpdateStepNotesCommand]
	SetOrderStatus     CommandHandler[commands.SetOrderStatusCommand]

	GetCompany    QueryHandler[queries.GetCompanyQuery, *company.Company]
	ListOrders    QueryHandler[queries.ListOrdersWithProgressQuery, []queries.OrderView]
	GetOrderStats QueryHandler[queries.GetOrderStatsQuery, queries.GetOrderStatsQueryResponse]
	TrackOrder    QueryHandler[queries.GetOrderWithProgressQuery, queries.GetOrderWithProgressQueryResponse]
}

// Server implements servers.ServerInterface on top of the application use
// cases. Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	handlers Handlers
	health   HealthReporter
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, health HealthReporter) *Server {
	return &Server{
		handlers: handlers,
		health:   health,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	checkedAt, err := s.health.LastCheck()
	if checkedAt.IsZero() {
		return ctx.JSON(http.StatusOK, servers.Health{Status: servers.HealthStatusUnknown})
	}

	resp := servers.Health{Status: servers.HealthStatusOk, CheckedAt: &checkedAt}
	if err != nil {
		msg := err.Error()
		resp.Status = servers.HealthStatusUnavailable
		resp.Error = &msg
		return ctx.JSON(http.StatusServiceUnavailable, resp)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// TrackOrder handles GET /api/v1/track, the public customer lookup.
func (s *Server) TrackOrder(ctx echo.Context, params servers.TrackOrderParams) error {
	query, err := queries.NewGetOrderWithProgressQuery(params.OrderNumber)
	if err != nil {
		return err
	}

	resp, err := s.handlers.TrackOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toTrackedOrder(resp))
}

// GetCompany handles GET /api/v1/company.
func (s *Server) GetCompany(ctx echo.Context) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	return s.respondCompany(ctx, ownerID)
}

// RegisterCompany handles PUT /api/v1/company and answers with the stored
// company.
func (s *Server) RegisterCompany(ctx echo.Context) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	var body servers.RegisterCompanyJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	var description string
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewRegisterCompanyCommand(ownerID, body.Name, string(body.Email), description, body.ProcessSteps)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCompany(ctx, ownerID)
}

func (s *Server) respondCompany(ctx echo.Context, ownerID kernel.UUID) error {
	query, err := queries.NewGetCompanyQuery(ownerID)
	if err != nil {
		return err
	}

	c, err := s.handlers.GetCompany.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toCompany(c))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersWithProgressQuery(ownerID)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]servers.Order, len(views))
	for i, view := range views {
		resp[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /api/v1/orders. The order id is assigned here so
// that a partial failure can report it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	var email, phone string
	if body.CustomerEmail != nil {
		email = string(*body.CustomerEmail)
	}
	if body.CustomerPhone != nil {
		phone = *body.CustomerPhone
	}

	customer, err := order.NewCustomer(body.CustomerName, email, phone)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, body.OrderNumber, customer, body.ProductDescription, body.TotalAmount)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:          orderID.Bytes(),
		OrderNumber: cmd.Number(),
	})
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatsQuery(ownerID)
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Cancelled:  stats.Cancelled,
	})
}

// SetOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) SetOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	var body servers.SetOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(ownerID, id, status)
	if err != nil {
		return err
	}

	if err = s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// InitializeProgress handles POST /api/v1/orders/{orderId}/progress.
func (s *Server) InitializeProgress(ctx echo.Context, orderId servers.OrderId) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewInitializeProgressCommand(ownerID, id)
	if err != nil {
		return err
	}

	if err = s.handlers.InitializeProgress.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStepStatus handles PUT /api/v1/progress/{stepId}/status.
func (s *Server) ChangeStepStatus(ctx echo.Context, stepId servers.StepId) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	var body servers.ChangeStepStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	status, err := progress.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(stepId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeStepStatusCommand(ownerID, id, status)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeStepStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStepNotes handles PUT /api/v1/progress/{stepId}/notes.
func (s *Server) UpdateStepNotes(ctx echo.Context, stepId servers.StepId) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateStepNotesJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(stepId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStepNotesCommand(ownerID, id, body.Notes)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateStepNotes.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

package queries

import (
	"context"

	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderWithProgressQueryHandler reads an order joined with its company and
// its ordered steps.
//
// An order without steps, left behind by a failed progress initialization,
// is reported at 0% awaiting production.
type GetOrderWithProgressQueryHandler struct {
	db      *gorm.DB
	tracker services.ProgressTracker
}

func NewGetOrderWithProgressQueryHandler(db *gorm.DB, tracker services.ProgressTracker) GetOrderWithProgressQueryHandler {
	return GetOrderWithProgressQueryHandler{
		db:      db,
		tracker: tracker,
	}
}

// Handle returns errs.ObjectNotFoundError when no order has the number.
func (h GetOrderWithProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWithProgressQuery,
) (GetOrderWithProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderWithProgressQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,
			c.name,
			c.email
		FROM orders o
		JOIN companies c ON c.id = o.company_id
		WHERE o.order_number = ?
		LIMIT 1
	`, query.OrderNumber()).Rows()
	if err != nil {
		return GetOrderWithProgressQueryResponse{}, storeFailure(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderWithProgressQueryResponse{}, storeFailure(err)
		}
		return GetOrderWithProgressQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	var resp GetOrderWithProgressQueryResponse
	resp.Order, resp.CreatedAt, err = scanOrder(rows, &resp.CompanyName, &resp.CompanyEmail)
	if err != nil {
		return GetOrderWithProgressQueryResponse{}, err
	}
	_ = rows.Close()

	orderID := resp.Order.ID().Bytes()
	steps, err := loadSteps(ctx, h.db, []uuid.UUID{orderID})
	if err != nil {
		return GetOrderWithProgressQueryResponse{}, err
	}

	resp.Steps = steps[orderID]
	resp.Progress = h.tracker.Summarize(resp.Steps)
	return resp, nil
}

package queries

import (
	"context"

	"ordertrack/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersWithProgressQueryHandler backs the company dashboard.
type ListOrdersWithProgressQueryHandler struct {
	db      *gorm.DB
	tracker services.ProgressTracker
}

func NewListOrdersWithProgressQueryHandler(db *gorm.DB, tracker services.ProgressTracker) ListOrdersWithProgressQueryHandler {
	return ListOrdersWithProgressQueryHandler{
		db:      db,
		tracker: tracker,
	}
}

// Handle returns errs.ObjectNotFoundError when the owner has not registered a
// company yet, and an empty slice when the company has no orders.
func (h ListOrdersWithProgressQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersWithProgressQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	companyID, err := companyIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.company_id = ?
		ORDER BY o.created_at DESC, o.order_number
	`, companyID).Rows()
	if err != nil {
		return nil, storeFailure(err)
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var view OrderView
		view.Order, view.CreatedAt, err = scanOrder(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
		ids = append(ids, view.Order.ID().Bytes())
	}
	if err = rows.Err(); err != nil {
		return nil, storeFailure(err)
	}
	_ = rows.Close()

	steps, err := loadSteps(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].Steps = steps[ids[i]]
		views[i].Progress = h.tracker.Summarize(views[i].Steps)
	}
	return views, nil
}

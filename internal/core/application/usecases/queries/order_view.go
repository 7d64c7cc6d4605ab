package queries

import (
	"context"
	"database/sql"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is an order together with its ordered progress steps and the
// progress derived from them.
type OrderView struct {
	Order     *order.Order
	CreatedAt time.Time
	Steps     []*progress.Step
	Progress  services.ProgressSummary
}

const orderColumns = `
	o.id,
	o.company_id,
	o.order_number,
	o.customer_name,
	o.customer_email,
	o.customer_phone,
	o.product_description,
	o.total_amount,
	o.status,
	o.created_at`

// scanOrder reads orderColumns followed by extra destinations.
func scanOrder(rows *sql.Rows, extra ...any) (*order.Order, time.Time, error) {
	var row orderRow
	if err := rows.Scan(append(row.dest(), extra...)...); err != nil {
		return nil, time.Time{}, storeFailure(err)
	}

	o, err := row.toOrder()
	if err != nil {
		return nil, time.Time{}, err
	}
	return o, row.CreatedAt, nil
}

// loadSteps fetches the steps of all given orders in one round trip, grouped
// by order and sorted by position.
func loadSteps(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]*progress.Step, error) {
	grouped := make(map[uuid.UUID][]*progress.Step, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var steps []stepRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			step_name,
			step_order,
			status,
			notes,
			started_at,
			completed_at
		FROM order_progress
		WHERE order_id IN ?
		ORDER BY order_id, step_order
	`, orderIDs).Scan(&steps).Error
	if err != nil {
		return nil, storeFailure(err)
	}

	for _, row := range steps {
		step, err := row.toStep()
		if err != nil {
			return nil, err
		}
		grouped[row.OrderID] = append(grouped[row.OrderID], step)
	}
	return grouped, nil
}

// companyIDForOwner resolves the single company of ownerID.
func companyIDForOwner(ctx context.Context, db *gorm.DB, ownerID kernel.UUID) (uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Raw(
		`SELECT id FROM companies WHERE user_id = ? LIMIT 1`,
		ownerID.Bytes(),
	).Scan(&ids).Error
	if err != nil {
		return uuid.Nil, storeFailure(err)
	}
	if len(ids) == 0 {
		return uuid.Nil, errs.NewObjectNotFoundError("company", ownerID)
	}
	return ids[0], nil
}

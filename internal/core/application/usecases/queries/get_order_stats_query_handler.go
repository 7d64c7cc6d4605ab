package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the owner has no company.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	companyID, err := companyIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE company_id = ?
		GROUP BY status
	`, companyID).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, storeFailure(err)
	}
	defer rows.Close()

	var resp GetOrderStatsQueryResponse
	for rows.Next() {
		var raw string
		var count int
		if err = rows.Scan(&raw, &count); err != nil {
			return GetOrderStatsQueryResponse{}, storeFailure(err)
		}

		status, err := order.ParseStatus(raw)
		if err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch status {
		case order.Pending:
			resp.Pending = count
		case order.InProgress:
			resp.InProgress = count
		case order.Completed:
			resp.Completed = count
		case order.Cancelled:
			resp.Cancelled = count
		}
		resp.Total += count
	}
	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, storeFailure(err)
	}

	return resp, nil
}

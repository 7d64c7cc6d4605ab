package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCompanyQueryHandler struct {
	db *gorm.DB
}

func NewGetCompanyQueryHandler(db *gorm.DB) GetCompanyQueryHandler {
	return GetCompanyQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the owner has no company.
func (h GetCompanyQueryHandler) Handle(ctx context.Context, query GetCompanyQuery) (*company.Company, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row companyRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			email,
			description,
			process_steps
		FROM companies
		WHERE user_id = ?
		LIMIT 1
	`, query.OwnerID().Bytes()).Scan(&row)
	if result.Error != nil {
		return nil, storeFailure(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("company", query.OwnerID())
	}

	return row.toCompany()
}

package orderrepo

import (
	"context"
	"time"

	"ordertrack/internal/adapters/out/postgres/dberr"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order. A taken order number fails with
// errs.ErrObjectAlreadyExists.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.TranslateUnique(err, "company", aggregate.CompanyID(), "order_number", aggregate.Number())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"order_number":        dto.OrderNumber,
		"customer_name":       dto.CustomerName,
		"customer_email":      dto.CustomerEmail,
		"customer_phone":      dto.CustomerPhone,
		"product_description": dto.ProductDescription,
		"total_amount":        dto.TotalAmount,
		"status":              dto.Status,
		"updated_at":          time.Now().UTC(),
	})
	if result.Error != nil {
		return dberr.TranslateUnique(result.Error, "order", aggregate.ID(), "order_number", aggregate.Number())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Translate(err, "order", id)
	}

	return ToDomain(dto)
}

// GetByNumber looks an order up by its external number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Take(&dto, "order_number = ?", number).Error; err != nil {
		return nil, dberr.Translate(err, "order_number", number)
	}

	return ToDomain(dto)
}

// GetForOwner returns the order only when its company belongs to ownerID.
func (r *GormOrderRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Joins("JOIN companies ON companies.id = orders.company_id").
		Where("orders.id = ? AND companies.user_id = ?", id.Bytes(), ownerID.Bytes()).
		Take(&dto).Error
	if err != nil {
		return nil, dberr.Translate(err, "order", id)
	}

	return ToDomain(dto)
}

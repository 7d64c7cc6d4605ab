package progressrepo

import (
	"context"
	"time"

	"ordertrack/internal/adapters/out/postgres/dberr"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProgressRepository implements ports.ProgressRepository using GORM.
type GormProgressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProgressRepository(db *gorm.DB, tracker aggregateTracker) *GormProgressRepository {
	return &GormProgressRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll inserts the steps in one statement. An empty slice is a no-op.
func (r *GormProgressRepository) AddAll(ctx context.Context, steps []*progress.Step) error {
	if len(steps) == 0 {
		return nil
	}

	dtos := make([]StepDTO, 0, len(steps))
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(s))
	}

	orderID := steps[0].OrderID()
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return dberr.TranslateUnique(err, "order", orderID, "step_order", orderID)
	}

	for _, s := range steps {
		r.tracker.TrackAggregate(s.ID(), s)
	}
	return nil
}

func (r *GormProgressRepository) Get(ctx context.Context, id kernel.UUID) (*progress.Step, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StepDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Translate(err, "step", id)
	}

	return ToDomain(dto)
}

// GetForOwner returns the step only when its order belongs to a company of
// ownerID.
func (r *GormProgressRepository) GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*progress.Step, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto StepDTO
	err := r.db.WithContext(ctx).
		Model(&StepDTO{}).
		Joins("JOIN orders ON orders.id = order_progress.order_id").
		Joins("JOIN companies ON companies.id = orders.company_id").
		Where("order_progress.id = ? AND companies.user_id = ?", id.Bytes(), ownerID.Bytes()).
		Take(&dto).Error
	if err != nil {
		return nil, dberr.Translate(err, "step", id)
	}

	return ToDomain(dto)
}

// ListByOrder returns the steps of an order by ascending step_order.
func (r *GormProgressRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Step, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StepDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("step_order").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, "order", orderID)
	}

	return ToDomainList(dtos)
}

// UpdateStatus writes status and timestamps with a compare-and-set on the
// previous status.
func (r *GormProgressRepository) UpdateStatus(ctx context.Context, step *progress.Step, from progress.Status) error {
	if err := step.Validate(); err != nil {
		return err
	}

	dto := fromDomain(step)
	result := r.db.WithContext(ctx).
		Model(&StepDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"started_at":   dto.StartedAt,
			"completed_at": dto.CompletedAt,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return dberr.Translate(result.Error, "step", step.ID())
	}

	if result.RowsAffected == 0 {
		return r.missingOrConflict(ctx, step.ID())
	}

	r.tracker.TrackAggregate(step.ID(), step)
	return nil
}

// UpdateNotes writes the notes of a step.
func (r *GormProgressRepository) UpdateNotes(ctx context.Context, step *progress.Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	dto := fromDomain(step)
	result := r.db.WithContext(ctx).
		Model(&StepDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"notes":      dto.Notes,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return dberr.Translate(result.Error, "step", step.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("step", step.ID())
	}

	r.tracker.TrackAggregate(step.ID(), step)
	return nil
}

func (r *GormProgressRepository) missingOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&StepDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return dberr.Translate(err, "step", id)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("step", id)
	}
	return progress.ErrStatusConflict
}

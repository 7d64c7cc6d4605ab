package companyrepo

import (
	"context"
	"time"

	"ordertrack/internal/adapters/out/postgres/dberr"
	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new company. A second company of the same owner fails with
// errs.ErrObjectAlreadyExists.
func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.TranslateUnique(err, "company", aggregate.ID(), "owner", aggregate.OwnerID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the editable profile of an existing company.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CompanyDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"email":         dto.Email,
		"description":   dto.Description,
		"process_steps": dto.ProcessSteps,
		"updated_at":    time.Now().UTC(),
	})
	if result.Error != nil {
		return dberr.Translate(result.Error, "company", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Translate(err, "company", id)
	}

	return ToDomain(dto)
}

// GetByOwner returns the company registered by ownerID.
func (r *GormCompanyRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*company.Company, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).Take(&dto, "user_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, dberr.Translate(err, "company of owner", ownerID)
	}

	return ToDomain(dto)
}

// Package progressrepo persists progress steps in the order_progress table.
package progressrepo

import (
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"

	"github.com/google/uuid"
)

// StepDTO is the row of the order_progress table. step_order is unique per
// order.
type StepDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_order_progress_position,priority:1"`
	Order       *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StepName    string              `gorm:"size:255;not null"`
	StepOrder   int                 `gorm:"not null;uniqueIndex:idx_order_progress_position,priority:2"`
	Status      string              `gorm:"size:20;not null"`
	Notes       *string             `gorm:"type:text"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StepDTO) TableName() string {
	return "order_progress"
}

func fromDomain(s *progress.Step) StepDTO {
	var notes *string
	if n := s.Notes(); n != "" {
		notes = &n
	}

	return StepDTO{
		ID:          s.ID().Bytes(),
		OrderID:     s.OrderID().Bytes(),
		StepName:    s.Name(),
		StepOrder:   s.Position(),
		Status:      s.Status().String(),
		Notes:       notes,
		StartedAt:   s.StartedAt(),
		CompletedAt: s.CompletedAt(),
	}
}

// ToDomain rebuilds a step from a row.
func ToDomain(dto StepDTO) (*progress.Step, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := progress.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var notes string
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return progress.RestoreStep(id, orderID, dto.StepName, dto.StepOrder, status, notes, dto.StartedAt, dto.CompletedAt)
}

// ToDomainList converts rows in their given order.
func ToDomainList(dtos []StepDTO) ([]*progress.Step, error) {
	steps := make([]*progress.Step, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

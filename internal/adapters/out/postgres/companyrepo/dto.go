// Package companyrepo persists the company aggregate in the companies table.
package companyrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CompanyDTO is the row of the companies table. An owner has at most one
// company, enforced by the unique index on user_id.
type CompanyDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string         `gorm:"size:255;not null"`
	Email        string         `gorm:"size:320;not null"`
	Description  *string        `gorm:"type:text"`
	ProcessSteps pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *company.Company) CompanyDTO {
	var description *string
	if d := c.Description(); d != "" {
		description = &d
	}

	return CompanyDTO{
		ID:           c.ID().Bytes(),
		UserID:       c.OwnerID().Bytes(),
		Name:         c.Name(),
		Email:        c.Email().String(),
		Description:  description,
		ProcessSteps: pq.StringArray(c.ProcessSteps().Names()),
	}
}

// ToDomain rebuilds the aggregate from a row. Query handlers reuse it for
// rows they select themselves.
func ToDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail("email", dto.Email)
	if err != nil {
		return nil, err
	}

	steps, err := company.NewProcessSteps(dto.ProcessSteps)
	if err != nil {
		return nil, err
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	return company.RestoreCompany(id, ownerID, dto.Name, email, description, steps)
}

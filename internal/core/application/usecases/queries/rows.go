package queries

import (
	"time"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const storeService = "postgres"

// storeFailure wraps a failed read. Queries detect missing rows themselves,
// so whatever the driver reports is a transport problem.
func storeFailure(err error) error {
	return errs.NewTransportErrorWithCause(storeService, err)
}

type companyRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Email        string
	Description  *string
	ProcessSteps pq.StringArray
}

func (r companyRow) toCompany() (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail("email", r.Email)
	if err != nil {
		return nil, err
	}
	steps, err := company.NewProcessSteps(r.ProcessSteps)
	if err != nil {
		return nil, err
	}

	var description string
	if r.Description != nil {
		description = *r.Description
	}
	return company.RestoreCompany(id, ownerID, r.Name, email, description, steps)
}

type orderRow struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	OrderNumber        string
	CustomerName       string
	CustomerEmail      *string
	CustomerPhone      *string
	ProductDescription string
	TotalAmount        *float64
	Status             string
	CreatedAt          time.Time
}

// dest lists scan targets in orderColumns order.
func (r *orderRow) dest() []any {
	return []any{
		&r.ID,
		&r.CompanyID,
		&r.OrderNumber,
		&r.CustomerName,
		&r.CustomerEmail,
		&r.CustomerPhone,
		&r.ProductDescription,
		&r.TotalAmount,
		&r.Status,
		&r.CreatedAt,
	}
}

func (r orderRow) toOrder() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(r.CompanyID[:])
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(r.CustomerName, valueOf(r.CustomerEmail), valueOf(r.CustomerPhone))
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, companyID, r.OrderNumber, customer, r.ProductDescription, r.TotalAmount, status)
}

type stepRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	StepName    string
	StepOrder   int
	Status      string
	Notes       *string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (r stepRow) toStep() (*progress.Step, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := progress.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return progress.RestoreStep(id, orderID, r.StepName, r.StepOrder, status, valueOf(r.Notes), r.StartedAt, r.CompletedAt)
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Package orderrepo persists the order aggregate in the orders table.
package orderrepo

import (
	"time"

	"ordertrack/internal/adapters/out/postgres/companyrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Order numbers are unique across
// all companies.
type OrderDTO struct {
	ID                 uuid.UUID               `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID               `gorm:"type:uuid;not null;index"`
	Company            *companyrepo.CompanyDTO `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	OrderNumber        string                  `gorm:"size:64;not null;uniqueIndex"`
	CustomerName       string                  `gorm:"size:255;not null"`
	CustomerEmail      *string                 `gorm:"size:320"`
	CustomerPhone      *string                 `gorm:"size:32"`
	ProductDescription string                  `gorm:"type:text;not null"`
	TotalAmount        *float64                `gorm:"type:numeric(12,2)"`
	Status             string                  `gorm:"size:20;not null;index"`
	CreatedAt          time.Time               `gorm:"index"`
	UpdatedAt          time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()

	var email *string
	if e := customer.Email(); e != nil {
		s := e.String()
		email = &s
	}

	var phone *string
	if p := customer.Phone(); p != "" {
		phone = &p
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		CompanyID:          o.CompanyID().Bytes(),
		OrderNumber:        o.Number(),
		CustomerName:       customer.Name(),
		CustomerEmail:      email,
		CustomerPhone:      phone,
		ProductDescription: o.ProductDescription(),
		TotalAmount:        o.TotalAmount(),
		Status:             o.Status().String(),
	}
}

// ToDomain rebuilds the aggregate from a row.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, deref(dto.CustomerEmail), deref(dto.CustomerPhone))
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, companyID, dto.OrderNumber, customer, dto.ProductDescription, dto.TotalAmount, status)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

const (
	MaxCustomerNameLength = 255
	MaxPhoneLength        = 32
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the contact fields of the person who placed an order.
// Only the name is mandatory.
type Customer struct {
	name  string
	email *kernel.Email
	phone string

	guard guard.ConstructorGuard
}

// NewCustomer validates the customer contact fields. An empty email or phone
// means "not provided".
func NewCustomer(name, email, phone string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's address, nil when not provided.
func (c Customer) Email() *kernel.Email {
	return c.email
}

// Phone returns the customer's phone number, "" when not provided.
func (c Customer) Phone() string {
	return c.phone
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_name",
			fmt.Errorf("longer than %d characters", MaxCustomerNameLength),
		)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return nil
	}
	parsed, err := kernel.NewEmail("customer_email", email)
	if err != nil {
		return err
	}
	c.email = &parsed
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer_phone",
			fmt.Errorf("longer than %d characters", MaxPhoneLength),
		)
	}
	c.phone = phone
	return nil
}

package company

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

const MaxNameLength = 255

var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany constructor")

// Company is the aggregate root for a manufacturer.
//
// Example:
//
//	email, _ := kernel.NewEmail("email", "sales@acme.test")
//	steps, _ := company.ParseProcessSteps("Design\nCutting\nSewing")
//	c, err := company.NewCompany(kernel.NewUUID(), ownerID, "Acme", email, "", steps)
type Company struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	email       kernel.Email
	description string
	steps       ProcessSteps

	guard guard.ConstructorGuard
}

// NewCompany registers a new company for ownerID. description is optional.
func NewCompany(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	email kernel.Email,
	description string,
	steps ProcessSteps,
) (*Company, error) {
	c := &Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwnerID(ownerID),
		c.setProfile(name, email, description, steps),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompany rebuilds a persisted company. It applies the same validation
// as NewCompany so rows that break the invariants never reach the domain.
func RestoreCompany(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	email kernel.Email,
	description string,
	steps ProcessSteps,
) (*Company, error) {
	return NewCompany(id, ownerID, name, email, description, steps)
}

// Update replaces the editable profile. Existing orders keep their step snapshot.
func (c *Company) Update(name string, email kernel.Email, description string, steps ProcessSteps) error {
	if err := c.Validate(); err != nil {
		return err
	}

	updated := *c
	if err := updated.setProfile(name, email, description, steps); err != nil {
		return err
	}

	*c = updated
	return nil
}

func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// IsOwnedBy reports whether ownerID is the owner of the company.
func (c *Company) IsOwnedBy(ownerID kernel.UUID) bool {
	return c.ownerID.IsEqual(ownerID)
}

func (c *Company) ID() kernel.UUID {
	return c.id
}

func (c *Company) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Email() kernel.Email {
	return c.email
}

// Description returns the optional description, "" when unset.
func (c *Company) Description() string {
	return c.description
}

func (c *Company) ProcessSteps() ProcessSteps {
	return c.steps
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *Company) setProfile(name string, email kernel.Email, description string, steps ProcessSteps) error {
	name = strings.TrimSpace(name)

	var nameErr error
	switch {
	case name == "":
		nameErr = errs.NewValueIsRequiredError("name")
	case utf8.RuneCountInString(name) > MaxNameLength:
		nameErr = errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("longer than %d characters", MaxNameLength),
		)
	}

	var emailErr error
	if err := email.Validate(); err != nil {
		emailErr = errs.NewValueIsRequiredErrorWithCause("email", err)
	}

	var stepsErr error
	if err := steps.Validate(); err != nil {
		stepsErr = errs.NewValueIsRequiredErrorWithCause("process_steps", err)
	}

	if err := errors.Join(nameErr, emailErr, stepsErr); err != nil {
		return err
	}

	c.name = name
	c.email = email
	c.description = strings.TrimSpace(description)
	c.steps = steps
	return nil
}

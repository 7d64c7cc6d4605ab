package commands

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrRegisterCompanyCommandIsNotConstructed = errors.New(
	"RegisterCompanyCommand must be created via NewRegisterCompanyCommand constructor",
)

// RegisterCompanyCommand creates the company of an owner or replaces its
// profile when one exists. Process steps are given as text, one per line.
//
// Example:
//
//	cmd, err := NewRegisterCompanyCommand(ownerID, "Acme", "sales@acme.test", "", "Design\nCutting\nSewing")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterCompanyCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	name        string
	email       kernel.Email
	description string
	steps       company.ProcessSteps

	guard guard.ConstructorGuard
}

func NewRegisterCompanyCommand(
	ownerID kernel.UUID,
	name string,
	email string,
	description string,
	processSteps string,
) (RegisterCompanyCommand, error) {
	cmd := RegisterCompanyCommand{
		guard:       guard.NewConstructorGuard(),
		description: strings.TrimSpace(description),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setSteps(processSteps),
	); err != nil {
		return RegisterCompanyCommand{}, err
	}

	return cmd, nil
}

func (c RegisterCompanyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCompanyCommandIsNotConstructed)
}

func (c RegisterCompanyCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c RegisterCompanyCommand) Name() string {
	return c.name
}

func (c RegisterCompanyCommand) Email() kernel.Email {
	return c.email
}

func (c RegisterCompanyCommand) Description() string {
	return c.description
}

func (c RegisterCompanyCommand) ProcessSteps() company.ProcessSteps {
	return c.steps
}

func (c *RegisterCompanyCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RegisterCompanyCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterCompanyCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmail("email", email)
	if err != nil {
		return err
	}
	c.email = parsed
	return nil
}

func (c *RegisterCompanyCommand) setSteps(text string) error {
	steps, err := company.ParseProcessSteps(text)
	if err != nil {
		return err
	}
	c.steps = steps
	return nil
}

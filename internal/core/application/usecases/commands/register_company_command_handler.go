package commands

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// RegisterCompanyCommandHandler upserts the company of the acting owner.
// Editing the step list only affects orders created afterwards.
type RegisterCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
}

func NewRegisterCompanyCommandHandler(uowFactory CompanyUoWFactory) RegisterCompanyCommandHandler {
	return RegisterCompanyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the company when the owner has none, otherwise updates it.
// When a concurrent first registration of the same owner wins the insert, the
// command is applied once more as an update of that company.
func (h RegisterCompanyCommandHandler) Handle(ctx context.Context, cmd RegisterCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.upsert(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return h.upsert(ctx, cmd)
	}
	return err
}

func (h RegisterCompanyCommandHandler) upsert(ctx context.Context, cmd RegisterCompanyCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CompanyRepository()

	existing, err := repo.GetByOwner(ctx, cmd.OwnerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		c, err := company.NewCompany(
			kernel.NewUUID(),
			cmd.OwnerID(),
			cmd.Name(),
			cmd.Email(),
			cmd.Description(),
			cmd.ProcessSteps(),
		)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, c); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = existing.Update(cmd.Name(), cmd.Email(), cmd.Description(), cmd.ProcessSteps()); err != nil {
			return err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

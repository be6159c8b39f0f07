package commands

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/services"
	"github.com/belvip/logistic-application/internal/pkg/errs"
)

// UpdatePackageCommandHandler applies an update to a stored package.
// Fetch, validation, mutation and save share one transaction and the row stays
// locked from the fetch until commit, so concurrent updates serialize. A failed
// validation returns before anything is written.
//
// Example:
//
//	handler := NewUpdatePackageCommandHandler(uowFactory)
//	id := int64(1)
//	cmd, _ := NewUpdatePackageCommand(&id, "Test description", 10.0, false, "PROCESSING")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDomainRuleViolation) {
//	    // transition or weight rejected
//	}
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	validator  services.LifecycleValidator
	mapper     mapper.PackageMapper
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLifecycleValidator(),
		mapper:     mapper.NewPackageMapper(),
	}
}

// Handle loads the package, checks the lifecycle rules, applies the new values and saves.
func (h *UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) (mapper.PackageResponse, error) {
	if err := cmd.Validate(); err != nil {
		return mapper.PackageResponse{}, err
	}

	if cmd.PackageID() == nil {
		return mapper.PackageResponse{}, errs.NewEntityNotFoundError(packages.EntityName, nil)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return mapper.PackageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	existing, err := repo.GetForUpdate(ctx, *cmd.PackageID())
	if err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = h.validator.ValidateForUpdate(existing, cmd.Weight(), cmd.Status()); err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = existing.Revise(cmd.Description(), cmd.Weight(), cmd.Fragile(), cmd.Status()); err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return mapper.PackageResponse{}, err
	}

	return h.mapper.ToResponse(existing), nil
}

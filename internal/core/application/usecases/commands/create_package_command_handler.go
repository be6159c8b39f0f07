package commands

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/domain/services"
)

// CreatePackageCommandHandler registers new packages.
// The candidate is checked by the lifecycle validator before a transaction is opened,
// so a rejected package never reaches storage.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	validator  services.LifecycleValidator
	mapper     mapper.PackageMapper
}

// NewCreatePackageCommandHandler creates a handler for package creation.
// Requires a PackageUoWFactory for transactional persistence.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLifecycleValidator(),
		mapper:     mapper.NewPackageMapper(),
	}
}

// Handle validates and persists the package and returns it with its new id.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (mapper.PackageResponse, error) {
	if err := cmd.Validate(); err != nil {
		return mapper.PackageResponse{}, err
	}

	candidate, err := h.mapper.ToEntity(cmd.Request())
	if err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = h.validator.ValidateForCreation(candidate); err != nil {
		return mapper.PackageResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return mapper.PackageResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, candidate); err != nil {
		return mapper.PackageResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return mapper.PackageResponse{}, err
	}

	return h.mapper.ToResponse(candidate), nil
}

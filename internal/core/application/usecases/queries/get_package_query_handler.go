package queries

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/ports"
	"github.com/belvip/logistic-application/internal/pkg/errs"
)

// GetPackageQueryHandler loads one package and projects it to a response.
type GetPackageQueryHandler struct {
	repo   ports.PackageRepository
	mapper mapper.PackageMapper
}

func NewGetPackageQueryHandler(repo ports.PackageRepository) GetPackageQueryHandler {
	return GetPackageQueryHandler{
		repo:   repo,
		mapper: mapper.NewPackageMapper(),
	}
}

// Handle returns the package or an EntityNotFoundError.
// A nil identifier never reaches the repository.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (mapper.PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return mapper.PackageResponse{}, err
	}

	if query.PackageID() == nil {
		return mapper.PackageResponse{}, errs.NewEntityNotFoundError(packages.EntityName, nil)
	}

	p, err := h.repo.Get(ctx, *query.PackageID())
	if err != nil {
		return mapper.PackageResponse{}, err
	}

	return h.mapper.ToResponse(p), nil
}

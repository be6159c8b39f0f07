package queries

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
	"github.com/belvip/logistic-application/internal/core/ports"
)

// ListPackagesQueryHandler returns one page of packages.
// Page metadata is taken from what storage reports, not recomputed from the request.
type ListPackagesQueryHandler struct {
	repo   ports.PackageRepository
	mapper mapper.PackageMapper
}

func NewListPackagesQueryHandler(repo ports.PackageRepository) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{
		repo:   repo,
		mapper: mapper.NewPackageMapper(),
	}
}

func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) (paging.Page[mapper.PackageResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[mapper.PackageResponse]{}, err
	}

	page, err := h.repo.FindAllPaged(ctx, query.Page())
	if err != nil {
		return paging.Page[mapper.PackageResponse]{}, err
	}

	return h.mapper.ToPageResponse(page), nil
}

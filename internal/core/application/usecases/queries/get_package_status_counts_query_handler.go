package queries

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/ports"
)

// GetPackageStatusCountsQueryHandler reports package counts per status.
// Every known status is present in the result, in lifecycle order,
// with zero for statuses no package is in.
type GetPackageStatusCountsQueryHandler struct {
	repo ports.PackageRepository
}

func NewGetPackageStatusCountsQueryHandler(repo ports.PackageRepository) GetPackageStatusCountsQueryHandler {
	return GetPackageStatusCountsQueryHandler{repo: repo}
}

func (h GetPackageStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetPackageStatusCountsQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	statuses := packages.AllStatuses()
	result := make([]StatusCount, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, StatusCount{Status: status, Count: counts[status]})
	}

	return result, nil
}

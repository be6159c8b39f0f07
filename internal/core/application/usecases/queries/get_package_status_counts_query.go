package queries

import (
	"errors"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

var (
	ErrGetPackageStatusCountsQueryIsNotConstructed = errors.New(
		"GetPackageStatusCountsQuery must be created via NewGetPackageStatusCountsQuery constructor",
	)
)

// GetPackageStatusCountsQuery asks how many packages are in each status.
type GetPackageStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPackageStatusCountsQuery() GetPackageStatusCountsQuery {
	return GetPackageStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPackageStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageStatusCountsQueryIsNotConstructed)
}

// StatusCount is the number of packages currently in one status.
type StatusCount struct {
	Status packages.Status
	Count  int64
}

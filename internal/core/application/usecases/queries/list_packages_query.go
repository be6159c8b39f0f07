package queries

import (
	"errors"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

var (
	ErrListPackagesQueryIsNotConstructed = errors.New(
		"ListPackagesQuery must be created via NewListPackagesQuery constructor",
	)
)

// ListPackagesQuery requests one page of packages.
// Raw inputs are resolved to defaults on construction; only an unknown
// sort direction fails.
//
// Example:
//
//	size := 5
//	query, err := NewListPackagesQuery(nil, &size, nil, nil)
//	// page 0, size 5, sorted by packageId ascending
type ListPackagesQuery struct {
	page paging.Query

	guard guard.ConstructorGuard
}

// NewListPackagesQuery resolves the raw pagination inputs into a page request.
func NewListPackagesQuery(pageNumber, pageSize *int, sortBy, sortOrder *string) (ListPackagesQuery, error) {
	page, err := paging.NewQuery(pageNumber, pageSize, sortBy, sortOrder, packages.IdentifierField)
	if err != nil {
		return ListPackagesQuery{}, err
	}

	return ListPackagesQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) Page() paging.Query {
	return q.page
}

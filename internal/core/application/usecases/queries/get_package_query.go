package queries

import (
	"errors"

	"github.com/belvip/logistic-application/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
)

// GetPackageQuery retrieves a single package by its identifier.
// A nil identifier is accepted here and reported as not found by the handler.
//
// Example:
//
//	id := int64(1)
//	query := NewGetPackageQuery(&id)
//	pkg, err := handler.Handle(ctx, query)
type GetPackageQuery struct {
	packageID *int64

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for the package with the given identifier.
func NewGetPackageQuery(packageID *int64) GetPackageQuery {
	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) PackageID() *int64 {
	return q.packageID
}

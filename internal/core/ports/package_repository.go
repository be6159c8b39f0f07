// Package ports defines the persistence contracts of the package service.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package and assigns the identifier generated by storage.
	Add(ctx context.Context, aggregate *packages.Package) error

	// Update persists changes to an existing package.
	// Returns an errs.EntityNotFoundError if the package no longer exists.
	Update(ctx context.Context, aggregate *packages.Package) error

	// Get retrieves a package by its identifier.
	// Returns an errs.EntityNotFoundError if nothing is stored under id.
	Get(ctx context.Context, id int64) (*packages.Package, error)

	// GetForUpdate retrieves a package and locks its row until the surrounding
	// transaction ends, so a concurrent update waits and then sees the saved state.
	// Returns an errs.EntityNotFoundError if nothing is stored under id.
	GetForUpdate(ctx context.Context, id int64) (*packages.Package, error)

	// FindAllPaged fetches one page sorted as described by query. The returned
	// page carries the metadata storage actually used.
	//
	// Example:
	//   q, _ := paging.NewQuery(nil, nil, nil, nil, packages.IdentifierField)
	//   page, err := repo.FindAllPaged(ctx, q)
	//   if err != nil {
	//       return fmt.Errorf("failed to list packages: %w", err)
	//   }
	//   fmt.Printf("page %d of %d\n", page.PageNumber+1, page.TotalPages)
	FindAllPaged(ctx context.Context, query paging.Query) (paging.Page[*packages.Package], error)

	// CountByStatus returns how many packages are currently in each status.
	// Statuses without packages are absent from the map.
	CountByStatus(ctx context.Context) (map[packages.Status]int64, error)
}

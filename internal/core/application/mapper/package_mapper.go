// Package mapper converts between the request/response shapes of the package
// use cases and the Package aggregate. All conversions are pure.
package mapper

import (
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
)

// PackageRequest is the caller's proposed content of a package.
type PackageRequest struct {
	Description string
	Weight      float64
	Fragile     bool
	Status      packages.Status
}

// PackageResponse is the projection of a package returned to callers.
type PackageResponse struct {
	PackageID   int64
	Description string
	Weight      float64
	Fragile     bool
	Status      packages.Status
}

// PackageMapper maps package requests to entities and entities to responses.
type PackageMapper struct{}

func NewPackageMapper() PackageMapper {
	return PackageMapper{}
}

// ToEntity builds a new, not yet persisted package from a request.
func (PackageMapper) ToEntity(request PackageRequest) (*packages.Package, error) {
	return packages.NewPackage(request.Description, request.Weight, request.Fragile, request.Status)
}

// ToResponse projects a package into its response shape.
func (PackageMapper) ToResponse(p *packages.Package) PackageResponse {
	return PackageResponse{
		PackageID:   p.ID(),
		Description: p.Description(),
		Weight:      p.Weight(),
		Fragile:     p.Fragile(),
		Status:      p.Status(),
	}
}

// ToPageResponse projects every package of a page and keeps the storage metadata.
func (m PackageMapper) ToPageResponse(page paging.Page[*packages.Package]) paging.Page[PackageResponse] {
	return paging.MapPage(page, m.ToResponse)
}

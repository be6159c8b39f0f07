// Package servers holds the OpenAPI server glue for the package API:
// wire types, the ServerInterface implemented by the HTTP adapter and the
// wrapper that binds path and query parameters before calling it.
// The code follows the oapi-codegen echo layout and is maintained by hand
// against api/openapi.yml.
package servers

import (
	"time"
)

// Defines values for PackageStatus.
const (
	DELIVERED      PackageStatus = "DELIVERED"
	FAILEDDELIVERY PackageStatus = "FAILED_DELIVERY"
	INTRANSIT      PackageStatus = "IN_TRANSIT"
	OUTFORDELIVERY PackageStatus = "OUT_FOR_DELIVERY"
	PENDING        PackageStatus = "PENDING"
	PROCESSING     PackageStatus = "PROCESSING"
	RETURNED       PackageStatus = "RETURNED"
)

// Error defines model for Error.
type Error struct {
	Error     string            `json:"error"`
	Messages  map[string]string `json:"messages"`
	Status    int               `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// PackagePage defines model for PackagePage.
type PackagePage struct {
	Content       []PackageResponse `json:"content"`
	LastPage      bool              `json:"lastPage"`
	PageNumber    int               `json:"pageNumber"`
	PageSize      int               `json:"pageSize"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// PackageRequest defines model for PackageRequest.
// Fields are pointers so that a missing field can be told apart from a zero value.
type PackageRequest struct {
	Description *string        `json:"description,omitempty"`
	Fragile     *bool          `json:"fragile,omitempty"`
	Status      *PackageStatus `json:"status,omitempty"`
	Weight      *float64       `json:"weight,omitempty"`
}

// PackageResponse defines model for PackageResponse.
type PackageResponse struct {
	Description string        `json:"description"`
	Fragile     bool          `json:"fragile"`
	PackageId   int64         `json:"packageId"`
	Status      PackageStatus `json:"status"`
	Weight      float64       `json:"weight"`
}

// PackageStatus defines model for PackageStatus.
type PackageStatus string

// ListPackagesParams defines parameters for ListPackages.
type ListPackagesParams struct {
	// PageNumber Page number (0-based)
	PageNumber *int32 `form:"pageNumber,omitempty" json:"pageNumber,omitempty"`

	// PageSize Page size
	PageSize *int32 `form:"pageSize,omitempty" json:"pageSize,omitempty"`

	// SortBy Field to sort by
	SortBy *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`

	// SortOrder Sort direction, asc or desc
	SortOrder *string `form:"sortOrder,omitempty" json:"sortOrder,omitempty"`
}

// CreatePackageJSONRequestBody defines body for CreatePackage for application/json ContentType.
type CreatePackageJSONRequestBody = PackageRequest

// UpdatePackageJSONRequestBody defines body for UpdatePackage for application/json ContentType.
type UpdatePackageJSONRequestBody = PackageRequest

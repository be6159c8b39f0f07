// Package packagerepo persists Package aggregates with GORM.
// Statuses are stored by name so that the table stays readable and
// independent of the enum's numeric order.
package packagerepo

import (
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
)

// PackageDTO is the row layout of the packages table.
type PackageDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Description string  `gorm:"type:varchar(255);not null"`
	Weight      float64 `gorm:"type:double precision;not null"`
	Fragile     bool    `gorm:"not null;default:false"`
	Status      string  `gorm:"type:varchar(32);not null;index"`
}

// TableName overrides GORM's default "package_dtos".
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(aggregate *packages.Package) PackageDTO {
	return PackageDTO{
		ID:          aggregate.ID(),
		Description: aggregate.Description(),
		Weight:      aggregate.Weight(),
		Fragile:     aggregate.Fragile(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto PackageDTO) (*packages.Package, error) {
	status, err := packages.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return packages.RestorePackage(dto.ID, dto.Description, dto.Weight, dto.Fragile, status)
}

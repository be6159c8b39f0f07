package postgres

import (
	"github.com/belvip/logistic-application/internal/adapters/out/postgres/packagerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&packagerepo.PackageDTO{})
}

package packagerepo

import (
	"context"
	"errors"
	"strings"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
	"github.com/belvip/logistic-application/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps the sort fields accepted from callers to table columns.
var sortColumns = map[string]string{
	packages.IdentifierField: "id",
	"id":                     "id",
	"description":            "description",
	"weight":                 "weight",
	"fragile":                "fragile",
	"status":                 "status",
}

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a repository on db, which may be a transaction.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Add inserts a new package and assigns the identifier generated by the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return errs.NewValueIsInvalidError(packages.IdentifierField)
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update overwrites every column of a stored package.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Zero values such as fragile=false must be written too.
	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"description": dto.Description,
			"weight":      dto.Weight,
			"fragile":     dto.Fragile,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError(packages.EntityName, dto.ID)
	}

	return nil
}

// Get retrieves a package by identifier.
func (r *GormPackageRepository) Get(ctx context.Context, id int64) (*packages.Package, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a package with SELECT ... FOR UPDATE. The row stays
// locked until the transaction of r commits or rolls back.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id int64) (*packages.Package, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPackageRepository) get(db *gorm.DB, id int64) (*packages.Package, error) {
	var dto PackageDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError(packages.EntityName, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAllPaged returns the requested page and the total row count.
// Rows with equal sort keys are ordered by id so pages do not overlap.
func (r *GormPackageRepository) FindAllPaged(
	ctx context.Context,
	query paging.Query,
) (paging.Page[*packages.Package], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[*packages.Package]{}, err
	}

	order, err := orderClause(query)
	if err != nil {
		return paging.Page[*packages.Package]{}, err
	}

	var total int64
	if err = r.db.WithContext(ctx).Model(&PackageDTO{}).Count(&total).Error; err != nil {
		return paging.Page[*packages.Package]{}, err
	}

	var dtos []PackageDTO
	if err = r.db.WithContext(ctx).
		Order(order).
		Offset(query.Offset()).
		Limit(query.PageSize()).
		Find(&dtos).Error; err != nil {
		return paging.Page[*packages.Package]{}, err
	}

	content := make([]*packages.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, mapErr := toDomain(dto)
		if mapErr != nil {
			return paging.Page[*packages.Package]{}, mapErr
		}
		content = append(content, p)
	}

	return paging.NewPage(content, query, total), nil
}

// CountByStatus groups stored packages by status.
func (r *GormPackageRepository) CountByStatus(ctx context.Context) (map[packages.Status]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[packages.Status]int64, len(rows))
	for _, row := range rows {
		status, err := packages.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		counts[status] = row.Total
	}

	return counts, nil
}

func orderClause(query paging.Query) (string, error) {
	column, ok := sortColumns[query.SortBy()]
	if !ok {
		return "", errs.NewValueIsInvalidError("sortBy")
	}

	direction := strings.ToUpper(query.Direction().String())
	clause := pq.QuoteIdentifier(column) + " " + direction
	if column != "id" {
		clause += ", " + pq.QuoteIdentifier("id") + " " + direction
	}

	return clause, nil
}

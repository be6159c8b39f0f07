// Package paging turns raw pagination and sorting inputs into a Query
// descriptor and carries the Page result returned by storage.
//
// Missing or out-of-range page number, page size and sort field fall back to
// defaults. A sort direction other than "asc" or "desc" is an error.
package paging

import (
	"errors"
	"math"
	"strings"

	"github.com/belvip/logistic-application/internal/pkg/errs"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
	DefaultSortOrder  = "asc"
)

var ErrQueryIsNotConstructed = errors.New("Query must be created via NewQuery constructor")

// Direction is the resolved sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc" and "desc" in any letter case.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(value) {
	case string(Ascending):
		return Ascending, nil
	case string(Descending):
		return Descending, nil
	default:
		return "", errs.NewDomainRuleViolationError("Invalid sort direction: " + value)
	}
}

func (d Direction) String() string {
	return string(d)
}

// Query is the normalized descriptor for a paged, sorted fetch.
type Query struct {
	pageNumber int
	pageSize   int
	sortBy     string
	direction  Direction

	guard guard.ConstructorGuard
}

// NewQuery resolves each raw input independently. defaultSortBy is used when
// sortBy is absent or blank, normally the identifier field of the entity.
func NewQuery(pageNumber, pageSize *int, sortBy, sortOrder *string, defaultSortBy string) (Query, error) {
	direction, err := ParseDirection(ResolveSortOrder(sortOrder))
	if err != nil {
		return Query{}, err
	}

	return Query{
		pageNumber: ResolvePageNumber(pageNumber),
		pageSize:   ResolvePageSize(pageSize),
		sortBy:     ResolveSortBy(sortBy, defaultSortBy),
		direction:  direction,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ResolvePageNumber returns the page number if present and not negative, else 0.
func ResolvePageNumber(pageNumber *int) int {
	if pageNumber != nil && *pageNumber >= 0 {
		return *pageNumber
	}
	return DefaultPageNumber
}

// ResolvePageSize returns the page size if present and positive, else 10.
func ResolvePageSize(pageSize *int) int {
	if pageSize != nil && *pageSize > 0 {
		return *pageSize
	}
	return DefaultPageSize
}

// ResolveSortBy returns sortBy if present and not blank, else fallback.
func ResolveSortBy(sortBy *string, fallback string) string {
	if sortBy != nil && strings.TrimSpace(*sortBy) != "" {
		return *sortBy
	}
	return fallback
}

// ResolveSortOrder returns sortOrder if present and not blank, else "asc".
// The result still has to go through ParseDirection.
func ResolveSortOrder(sortOrder *string) string {
	if sortOrder != nil && strings.TrimSpace(*sortOrder) != "" {
		return *sortOrder
	}
	return DefaultSortOrder
}

// Validate ensures the query was created through NewQuery.
func (q Query) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

func (q Query) PageNumber() int {
	return q.pageNumber
}

func (q Query) PageSize() int {
	return q.pageSize
}

func (q Query) SortBy() string {
	return q.sortBy
}

func (q Query) Direction() Direction {
	return q.direction
}

// Offset is the number of rows to skip before the requested page.
// It saturates at math.MaxInt instead of wrapping, so a page far past the end
// stays past the end.
func (q Query) Offset() int {
	if q.pageSize > 0 && q.pageNumber > math.MaxInt/q.pageSize {
		return math.MaxInt
	}
	return q.pageNumber * q.pageSize
}

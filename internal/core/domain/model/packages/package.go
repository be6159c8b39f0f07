package packages

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/belvip/logistic-application/internal/pkg/errs"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

const (
	// EntityName is the entity kind reported in not-found errors.
	EntityName = "Package"

	// IdentifierField is the API name of the identifier, used as the default sort field.
	IdentifierField = "packageId"

	MinDescriptionLength = 4
	MaxDescriptionLength = 255

	// MaxWeight is the weight ceiling in kilograms.
	MaxWeight = 50.0
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

// Package is a trackable shipped item. It is created without an id; storage
// assigns one on first save through AssignID.
type Package struct {
	id          int64
	description string
	weight      float64
	fragile     bool
	status      Status

	guard guard.ConstructorGuard
}

// NewPackage creates a package that has not been persisted yet.
// Only the shape of the fields is checked here; creation rules such as the
// initial status and the weight ceiling belong to services.LifecycleValidator.
func NewPackage(description string, weight float64, fragile bool, status Status) (*Package, error) {
	p := &Package{
		fragile: fragile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setDescription(description),
		p.setWeight(weight),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a persisted package, e.g. from a database row.
func RestorePackage(id int64, description string, weight float64, fragile bool, status Status) (*Package, error) {
	p, err := NewPackage(description, weight, fragile, status)
	if err != nil {
		return nil, err
	}

	if err = p.AssignID(id); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the package was created through a constructor.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p *Package) ID() int64 {
	return p.id
}

func (p *Package) Description() string {
	return p.description
}

func (p *Package) Weight() float64 {
	return p.weight
}

func (p *Package) Fragile() bool {
	return p.fragile
}

func (p *Package) Status() Status {
	return p.status
}

// IsPersisted reports whether storage has assigned an id.
func (p *Package) IsPersisted() bool {
	return p.id > 0
}

// AssignID records the identifier generated by storage. It can be called once.
func (p *Package) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if p.id != 0 && p.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("package already has id %d", p.id))
	}
	p.id = id
	return nil
}

// Revise replaces all mutable fields. Callers run the lifecycle checks first;
// Revise only guards the field shapes, and leaves the package untouched on error.
func (p *Package) Revise(description string, weight float64, fragile bool, status Status) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		ValidateDescription(description),
		ValidateWeight(weight),
		status.Validate(),
	); err != nil {
		return err
	}

	p.description = description
	p.weight = weight
	p.fragile = fragile
	p.status = status
	return nil
}

// ValidateDescription checks that a description is not blank and is 4 to 255 characters long.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}

	if n := utf8.RuneCountInString(description); n < MinDescriptionLength || n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", n, MinDescriptionLength, MaxDescriptionLength)
	}

	return nil
}

// ValidateWeight checks that a weight is a positive finite number.
func ValidateWeight(weight float64) error {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	return nil
}

func (p *Package) setDescription(description string) error {
	if err := ValidateDescription(description); err != nil {
		return err
	}
	p.description = description
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Package) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

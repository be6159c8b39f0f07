package commands

import (
	"errors"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand replaces every mutable field of a stored package.
// A nil id is accepted; the handler reports it as a missing package.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID   *int64
	description string
	weight      float64
	fragile     bool
	status      packages.Status

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand validates the request fields and returns a command.
func NewUpdatePackageCommand(
	packageID *int64,
	description string,
	weight float64,
	fragile bool,
	status string,
) (UpdatePackageCommand, error) {
	cmd := UpdatePackageCommand{
		packageID: packageID,
		fragile:   fragile,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setWeight(weight),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the target id, nil when the caller supplied none.
func (c UpdatePackageCommand) PackageID() *int64 {
	return c.packageID
}

func (c UpdatePackageCommand) Description() string {
	return c.description
}

func (c UpdatePackageCommand) Weight() float64 {
	return c.weight
}

func (c UpdatePackageCommand) Fragile() bool {
	return c.fragile
}

func (c UpdatePackageCommand) Status() packages.Status {
	return c.status
}

func (c *UpdatePackageCommand) setDescription(description string) error {
	if err := packages.ValidateDescription(description); err != nil {
		return err
	}
	c.description = description
	return nil
}

func (c *UpdatePackageCommand) setWeight(weight float64) error {
	if err := packages.ValidateWeight(weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *UpdatePackageCommand) setStatus(status string) error {
	parsed, err := packages.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}

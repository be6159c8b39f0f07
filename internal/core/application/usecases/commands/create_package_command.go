package commands

import (
	"errors"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to register a new package.
// The constructor checks the request shape only; lifecycle rules run in the handler.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand("Test description", 10.0, false, "PENDING")
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	handler := NewCreatePackageCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	description string
	weight      float64
	fragile     bool
	status      packages.Status

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates the request fields and returns a command.
// status is the status name, e.g. "PENDING".
func NewCreatePackageCommand(description string, weight float64, fragile bool, status string) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		fragile: fragile,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setWeight(weight),
		cmd.setStatus(status),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Description() string {
	return c.description
}

func (c CreatePackageCommand) Weight() float64 {
	return c.weight
}

func (c CreatePackageCommand) Fragile() bool {
	return c.fragile
}

func (c CreatePackageCommand) Status() packages.Status {
	return c.status
}

// Request returns the command as a mapper request.
func (c CreatePackageCommand) Request() mapper.PackageRequest {
	return mapper.PackageRequest{
		Description: c.description,
		Weight:      c.weight,
		Fragile:     c.fragile,
		Status:      c.status,
	}
}

func (c *CreatePackageCommand) setDescription(description string) error {
	if err := packages.ValidateDescription(description); err != nil {
		return err
	}
	c.description = description
	return nil
}

func (c *CreatePackageCommand) setWeight(weight float64) error {
	if err := packages.ValidateWeight(weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *CreatePackageCommand) setStatus(status string) error {
	parsed, err := packages.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}

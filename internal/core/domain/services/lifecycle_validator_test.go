package services_test

import (
	"fmt"
	"testing"

	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/services"
	"github.com/belvip/logistic-application/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	weightMessage    = "Weight must not exceed 50.0 kg"
	initialMessage   = "Status must be an initial state (e.g. PENDING)"
	deliveredMessage = "Cannot update a package that has already been delivered"
)

func newPackage(t *testing.T, weight float64, status packages.Status) *packages.Package {
	t.Helper()
	p, err := packages.NewPackage("Test description", weight, false, status)
	require.NoError(t, err)
	return p
}

func storedPackage(t *testing.T, status packages.Status) *packages.Package {
	t.Helper()
	p, err := packages.RestorePackage(1, "Stored package", 10.0, false, status)
	require.NoError(t, err)
	return p
}

func requireRuleViolation(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
	assert.Equal(t, message, err.Error())
}

func TestLifecycleValidator_ValidateForCreation(t *testing.T) {
	validator := services.NewLifecycleValidator()

	t.Run("pending package within the ceiling", func(t *testing.T) {
		require.NoError(t, validator.ValidateForCreation(newPackage(t, 10.0, packages.Pending)))
	})

	t.Run("weight exactly at the ceiling", func(t *testing.T) {
		require.NoError(t, validator.ValidateForCreation(newPackage(t, 50.0, packages.Pending)))
	})

	t.Run("weight above the ceiling", func(t *testing.T) {
		for _, w := range []float64{50.01, 55.0, 1000} {
			err := validator.ValidateForCreation(newPackage(t, w, packages.Pending))
			requireRuleViolation(t, err, weightMessage)
		}
	})

	t.Run("every non initial status", func(t *testing.T) {
		for _, status := range packages.AllStatuses() {
			if status == packages.Pending {
				continue
			}
			err := validator.ValidateForCreation(newPackage(t, 10.0, status))
			requireRuleViolation(t, err, initialMessage)
		}
	})

	t.Run("weight is reported before status", func(t *testing.T) {
		err := validator.ValidateForCreation(newPackage(t, 60.0, packages.Delivered))
		requireRuleViolation(t, err, weightMessage)
	})

	t.Run("unconstructed candidate", func(t *testing.T) {
		err := validator.ValidateForCreation(&packages.Package{})
		require.ErrorIs(t, err, packages.ErrPackageIsNotConstructed)

		err = validator.ValidateForCreation(nil)
		require.ErrorIs(t, err, packages.ErrPackageIsNotConstructed)
	})
}

func TestLifecycleValidator_ValidateForUpdate_TransitionTable(t *testing.T) {
	validator := services.NewLifecycleValidator()
	allowed := map[packages.Status]packages.Status{
		packages.Pending:        packages.Processing,
		packages.Processing:     packages.InTransit,
		packages.InTransit:      packages.OutForDelivery,
		packages.OutForDelivery: packages.Delivered,
	}

	for _, current := range packages.AllStatuses() {
		if current == packages.Delivered {
			continue
		}
		for _, next := range packages.AllStatuses() {
			t.Run(fmt.Sprintf("%s to %s", current, next), func(t *testing.T) {
				err := validator.ValidateForUpdate(storedPackage(t, current), 10.0, next)

				if allowed[current] == next {
					require.NoError(t, err)
					return
				}
				requireRuleViolation(t, err,
					fmt.Sprintf("Invalid status transition: from %s to %s", current, next))
			})
		}
	}
}

func TestLifecycleValidator_ValidateForUpdate_Delivered(t *testing.T) {
	validator := services.NewLifecycleValidator()
	delivered := storedPackage(t, packages.Delivered)

	for _, next := range packages.AllStatuses() {
		for _, w := range []float64{1.0, 50.0, 99.0} {
			err := validator.ValidateForUpdate(delivered, w, next)
			requireRuleViolation(t, err, deliveredMessage)
		}
	}
}

func TestLifecycleValidator_ValidateForUpdate_CheckOrder(t *testing.T) {
	validator := services.NewLifecycleValidator()

	t.Run("weight is reported before an invalid transition", func(t *testing.T) {
		err := validator.ValidateForUpdate(storedPackage(t, packages.Pending), 55.0, packages.Delivered)
		requireRuleViolation(t, err, weightMessage)
	})

	t.Run("weight above the ceiling on a valid transition", func(t *testing.T) {
		err := validator.ValidateForUpdate(storedPackage(t, packages.Pending), 55.0, packages.Processing)
		requireRuleViolation(t, err, weightMessage)
	})

	t.Run("staying in the same status is not a transition", func(t *testing.T) {
		err := validator.ValidateForUpdate(storedPackage(t, packages.InTransit), 5.0, packages.InTransit)
		requireRuleViolation(t, err, "Invalid status transition: from IN_TRANSIT to IN_TRANSIT")
	})

	t.Run("unconstructed existing package", func(t *testing.T) {
		err := validator.ValidateForUpdate(nil, 5.0, packages.Processing)
		require.ErrorIs(t, err, packages.ErrPackageIsNotConstructed)
	})
}

func TestLifecycleValidator_DoesNotMutate(t *testing.T) {
	validator := services.NewLifecycleValidator()
	existing := storedPackage(t, packages.InTransit)

	require.NoError(t, validator.ValidateForUpdate(existing, 20.0, packages.OutForDelivery))

	assert.Equal(t, packages.InTransit, existing.Status())
	assert.InDelta(t, 10.0, existing.Weight(), 1e-9)
}

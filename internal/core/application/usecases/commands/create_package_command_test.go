package commands_test

import (
	"strings"
	"testing"

	"github.com/belvip/logistic-application/internal/core/application/usecases/commands"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePackageCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreatePackageCommand("Test description", 10.0, true, "PENDING")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Test description", cmd.Description())
	assert.InDelta(t, 10.0, cmd.Weight(), 1e-9)
	assert.True(t, cmd.Fragile())
	assert.Equal(t, packages.Pending, cmd.Status())
	assert.Equal(t, cmd.Status(), cmd.Request().Status)
}

func TestNewCreatePackageCommand_AcceptsAnyDeclaredStatus(t *testing.T) {
	cmd, err := commands.NewCreatePackageCommand("Test description", 10.0, false, "delivered")

	require.NoError(t, err)
	assert.Equal(t, packages.Delivered, cmd.Status())
}

func TestNewCreatePackageCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		weight      float64
		status      string
		wantErr     error
	}{
		{"blank description", "   ", 10, "PENDING", errs.ErrValueIsRequired},
		{"short description", "abc", 10, "PENDING", errs.ErrValueIsOutOfRange},
		{"long description", strings.Repeat("a", 256), 10, "PENDING", errs.ErrValueIsOutOfRange},
		{"zero weight", "Test description", 0, "PENDING", errs.ErrValueIsInvalid},
		{"negative weight", "Test description", -2, "PENDING", errs.ErrValueIsInvalid},
		{"unknown status", "Test description", 10, "LOST", errs.ErrValueIsInvalid},
		{"empty status", "Test description", 10, "", errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreatePackageCommand(tc.description, tc.weight, false, tc.status)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCreatePackageCommand_WeightCeilingIsNotAShapeRule(t *testing.T) {
	cmd, err := commands.NewCreatePackageCommand("Test description", 80, false, "PENDING")

	require.NoError(t, err)
	assert.InDelta(t, 80.0, cmd.Weight(), 1e-9)
}

func TestCreatePackageCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreatePackageCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreatePackageCommandIsNotConstructed)
}

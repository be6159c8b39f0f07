package guard_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/belvip/logistic-application/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errLabelNotConstructed := errors.New("Label must be created via NewLabel")

	type Label struct {
		text  string
		guard guard.ConstructorGuard
	}

	newLabel := func(text string) (Label, error) {
		if text == "" {
			return Label{}, errors.New("text is required")
		}
		return Label{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	label, err := newLabel("FRAGILE")
	require.NoError(t, err)
	require.NoError(t, label.guard.Validate(errLabelNotConstructed))
	assert.Equal(t, "FRAGILE", label.text)

	var zero Label
	assert.Equal(t, errLabelNotConstructed, zero.guard.Validate(errLabelNotConstructed))
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(errNotConstructed))
			}
		}()
	}
	wg.Wait()
}

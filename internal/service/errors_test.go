package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("lists fields in stable order", func(t *testing.T) {
		t.Parallel()

		err := &ValidationError{Fields: map[string]string{
			"textType": "unknown type",
			"prompt":   "cannot be empty",
		}}

		assert.Equal(t,
			"invalid request: prompt: cannot be empty; textType: unknown type",
			err.Error())
	})

	t.Run("constructor returns nil for no failures", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, newValidationError(nil))
		assert.NoError(t, newValidationError(map[string]string{}))
	})

	t.Run("constructor returns typed error for failures", func(t *testing.T) {
		t.Parallel()

		err := newValidationError(map[string]string{"prompt": "cannot be empty"})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

package errs_test

import (
	"errors"
	"testing"

	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("access travel order")

		assert.Equal(t, "access travel order", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "forbidden: access travel order", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor is not an admin")
		err := errs.NewForbiddenErrorWithCause("change status", cause)

		assert.Equal(t, "change status", err.Action)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "forbidden: change status (cause: actor is not an admin)", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("cancel travel order", "approved")

		assert.Equal(t, "cancel travel order", err.Action)
		assert.Equal(t, "approved", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"invalid state: cannot cancel travel order, current status is approved",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("concurrent update")
		err := errs.NewInvalidStateErrorWithCause("approve travel order", "cancelled", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: cannot approve travel order, current status is cancelled (cause: concurrent update)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError sorts fields", func(t *testing.T) {
		err := errs.NewValidationError(map[string]string{
			"return_date": "must not precede departure date",
			"destination": "must not be empty",
		})

		assert.Equal(t,
			"validation failed: destination: must not be empty; return_date: must not precede departure date",
			err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewSingleFieldValidationError", func(t *testing.T) {
		err := errs.NewSingleFieldValidationError("status", "must be approved or rejected")

		assert.Equal(t, map[string]string{"status": "must be approved or rejected"}, err.Fields)
		assert.Equal(t, "validation failed: status: must be approved or rejected", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("destination")

		assert.Equal(t, "destination", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: destination", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("destination", cause)

		assert.Equal(t, "destination", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: destination (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("per_page", 150, 1, 100)

		assert.Equal(t, "per_page", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is per_page, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("limit", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is limit, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("departure_date")

		assert.Equal(t, "departure_date", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: departure_date", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("departure_date", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: departure_date (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrValidation)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "validation failed", errs.ErrValidation.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewForbiddenError("delete"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidStateError("cancel", "approved"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewSingleFieldValidationError("destination", "too long"), errs.ErrValidation)
		require.ErrorIs(t, errs.NewValueIsInvalidError("destination"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("per_page", 150, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("departure_date"), errs.ErrValueIsRequired)
	})
}

package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 100 (cause: validation failed)",
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
		err := errs.NewValueIsRequiredError("deliveryAddress")

		assert.Equal(t, "deliveryAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("deliveryAddress", cause)

		assert.Equal(t, "deliveryAddress", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("DELIVERED", "PENDING")

		assert.Equal(t, "DELIVERED", err.From)
		assert.Equal(t, "PENDING", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid status transition: from DELIVERED to PENDING", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal status")
		err := errs.NewInvalidTransitionErrorWithCause("CANCELLED", "CONFIRMED", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid status transition: from CANCELLED to CONFIRMED (cause: terminal status)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("actor-1", "cancel order")

		assert.Equal(t, "actor-1", err.ActorID)
		assert.Equal(t, "cancel order", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "unauthorized: actor is: actor-1, operation is: cancel order", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("order belongs to another customer")
		err := errs.NewUnauthorizedErrorWithCause("actor-1", "cancel order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"unauthorized: actor is: actor-1, operation is: cancel order (cause: order belongs to another customer)",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestStaleAggregateError(t *testing.T) {
	err := errs.NewStaleAggregateError("order", "abc", 3)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "abc", err.ID)
	assert.Equal(t, 3, err.Version)
	assert.Equal(t, "stale aggregate: param is: order, ID is: abc, version is: 3", err.Error())
	assert.Equal(t, errs.ErrStaleAggregate, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrStaleAggregate)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "stale aggregate", errs.ErrStaleAggregate.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 7, 1, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("DELIVERED", "PENDING"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewUnauthorizedError("actor", "op"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewStaleAggregateError("order", "id", 1), errs.ErrStaleAggregate)
	})
}

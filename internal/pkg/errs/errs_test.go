package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("agentCode")

		assert.Equal(t, "agentCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: agentCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("agentCode", cause)

		assert.Equal(t, "agentCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: agentCode (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("insuranceRate", 150, 0, 100)

		assert.Equal(t, "insuranceRate", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is insuranceRate, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})
}

func TestStateIsInvalidError(t *testing.T) {
	t.Run("NewStateIsInvalidError", func(t *testing.T) {
		err := errs.NewStateIsInvalidError("session", "must be ACTIVE")

		assert.Equal(t, "session", err.EntityName)
		assert.Equal(t, "must be ACTIVE", err.Requirement)
		assert.Equal(t, "state is invalid: session must be ACTIVE", err.Error())
		assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())
	})

	t.Run("NewStateIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is CLOSED")
		err := errs.NewStateIsInvalidErrorWithCause("session", "must be ACTIVE", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state is invalid: session must be ACTIVE (cause: status is CLOSED)", err.Error())
	})
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedError("agent", "confirm departure")

	assert.Equal(t, "agent", err.Role)
	assert.Equal(t, "confirm departure", err.Operation)
	assert.Equal(t, "operation is not authorized: role agent is not allowed to confirm departure", err.Error())
	assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
}

func TestConcurrencyConflictError(t *testing.T) {
	cause := errors.New("serialization failure")
	err := errs.NewConcurrencyConflictError("batch", "b-1", cause)

	assert.Equal(t, "batch", err.ParamName)
	assert.Equal(t, "b-1", err.ID)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"concurrent modification detected: param is: batch, ID is: b-1 (cause: serialization failure)",
		err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
	assert.Equal(t, "operation is not authorized", errs.ErrNotAuthorized.Error())
	assert.Equal(t, "concurrent modification detected", errs.ErrConcurrencyConflict.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("shipmentId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("agentCode"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rate", 150, 0, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewStateIsInvalidError("session", "must be ACTIVE"), errs.ErrStateIsInvalid)
	require.ErrorIs(t, errs.NewNotAuthorizedError("agent", "close batch"), errs.ErrNotAuthorized)
	require.ErrorIs(t, errs.NewConcurrencyConflictError("batch", "b-1", errors.New("x")), errs.ErrConcurrencyConflict)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("x")), errs.ErrVersionIsInvalid)
}

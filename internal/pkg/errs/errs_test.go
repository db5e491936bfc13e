package errs_test

import (
	"errors"
	"testing"

	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("rentId", "123")

		assert.Equal(t, "rentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("rentId", "123", cause)

		assert.Equal(t, "rentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: rentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
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

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("senderEmail")

		assert.Equal(t, "senderEmail", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: senderEmail", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("senderEmail", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: senderEmail (cause: missing required field)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("rent")

		assert.Equal(t, "rent", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: rent", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("row changed underneath")
		err := errs.NewVersionIsInvalidErrorWithCause("locker", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: locker (cause: row changed underneath)", err.Error())
	})
}

func TestCallerFacingErrors(t *testing.T) {
	t.Run("BadRequestError exposes its message verbatim", func(t *testing.T) {
		err := errs.NewBadRequestError("Locker is already occupied")

		assert.Equal(t, "Locker is already occupied", err.Error())
		assert.Equal(t, errs.ErrBadRequest, err.Unwrap())
	})

	t.Run("ForbiddenError exposes its message verbatim", func(t *testing.T) {
		err := errs.NewForbiddenError("Invalid code")

		assert.Equal(t, "Invalid code", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("UnauthorizedError exposes its message verbatim", func(t *testing.T) {
		err := errs.NewUnauthorizedError("Invalid credentials")

		assert.Equal(t, "Invalid credentials", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("ConflictError exposes its message verbatim", func(t *testing.T) {
		err := errs.NewConflictError("Email already in use")

		assert.Equal(t, "Email already in use", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("WithCause variants append the cause", func(t *testing.T) {
		cause := errors.New("row locked")
		err := errs.NewBadRequestErrorWithCause("Locker is already occupied", cause)
		assert.Equal(t, "Locker is already occupied (cause: row locked)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("rentId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("size"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("weight"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewBadRequestError("Locker is not open"), errs.ErrBadRequest)
	require.ErrorIs(t, errs.NewForbiddenError("Invalid code"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewUnauthorizedError("Token has expired"), errs.ErrUnauthorized)
	require.ErrorIs(t, errs.NewConflictError("Email already in use"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("rent"), errs.ErrVersionIsInvalid)
}

func TestIsClassified(t *testing.T) {
	t.Run("classified kinds", func(t *testing.T) {
		classified := []error{
			errs.NewObjectNotFoundError("rentId", "123"),
			errs.NewValueIsInvalidError("size"),
			errs.NewValueIsRequiredError("weight"),
			errs.NewBadRequestError("Rent does not have a locker assigned"),
			errs.NewForbiddenError("Rent is not in pickup status"),
			errs.NewUnauthorizedError("Invalid token"),
			errs.NewConflictError("Email already in use"),
			errs.NewVersionIsInvalidError("locker"),
		}
		for _, err := range classified {
			assert.True(t, errs.IsClassified(err), "expected %v to be classified", err)
		}
	})

	t.Run("raw errors are unclassified", func(t *testing.T) {
		assert.False(t, errs.IsClassified(errors.New("connection reset")))
		assert.False(t, errs.IsClassified(nil))
	})
}

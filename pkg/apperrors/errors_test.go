package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("db down")
	appErr := Wrap(cause, CodeInternalError, "storage", "Query failed", http.StatusInternalServerError)

	assert.Contains(t, appErr.Error(), "storage")
	assert.Contains(t, appErr.Error(), "db down")
	assert.ErrorIs(t, appErr, cause)
}

func TestIsAndAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", ErrInvalidCredentials)
	assert.True(t, Is(wrapped, ErrInvalidCredentials))

	var appErr *AppError
	require.True(t, As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	assert.Equal(t, "auth", appErr.Domain)
}

func TestWithDetails(t *testing.T) {
	details := map[string]string{"email": "Must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}

func TestPredefinedHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrAdminNotApproved.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrAccountDeactivated.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrProfileNotVisible.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrUsernameAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrCannotFollowSelf.HTTPCode)
}

func TestErrInvalidOperation(t *testing.T) {
	appErr := ErrInvalidOperation("users", "Cannot deactivate the platform owner")
	assert.Equal(t, CodeInvalidOperation, appErr.Code)
	assert.Equal(t, "users", appErr.Domain)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

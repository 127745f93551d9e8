package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := UserError("decision must be served first")
	require.Equal(t, http.StatusUnprocessableEntity, err.Status)
	require.Equal(t, "decision must be served first", err.Message)
	require.True(t, IsUserError(err))
	require.False(t, IsValidation(err))
	require.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrUserError))
}

func TestFromErrorNormalisesUnknown(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	require.Equal(t, ErrInternal.Code, appErr.Code)
	require.Equal(t, http.StatusInternalServerError, appErr.Status)

	v := Validation("expiry date must be after the effective date")
	require.Same(t, v, FromError(v))
}

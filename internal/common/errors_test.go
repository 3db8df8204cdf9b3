package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NewError(tt.code, "x").HTTPStatus())
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("passes AppError through", func(t *testing.T) {
		orig := ErrForbidden("nope")
		require.Same(t, orig, AsAppError(orig))
	})

	t.Run("wrapped AppError unwraps", func(t *testing.T) {
		orig := ErrNotFound("gone")
		wrapped := errors.Join(errors.New("outer"), orig)
		require.Equal(t, CodeNotFound, AsAppError(wrapped).Code)
	})

	t.Run("gorm not found becomes 404", func(t *testing.T) {
		appErr := AsAppError(gorm.ErrRecordNotFound)
		require.Equal(t, CodeNotFound, appErr.Code)
	})

	t.Run("unknown errors become internal without leaking", func(t *testing.T) {
		appErr := AsAppError(errors.New("driver exploded"))
		require.Equal(t, CodeInternal, appErr.Code)
		require.Equal(t, "Internal server error", appErr.Message)
	})
}

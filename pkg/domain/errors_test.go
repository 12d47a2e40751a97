package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{"not found", NewNotFoundError("lead"), IsNotFound, ErrCodeNotFound},
		{"validation", NewValidationError("bad plan"), IsValidation, ErrCodeValidation},
		{"conflict", NewConflictError("version"), IsConflict, ErrCodeConflict},
		{"rate limited", NewRateLimitError("slow down"), IsRateLimited, ErrCodeRateLimited},
		{"external", NewExternalError("pagarme", errors.New("timeout")), IsExternal, ErrCodeExternal},
		{"transition", NewTransitionError("lost", "won"), IsTransition, ErrCodeTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, GetErrorCode(tt.err))

			wrapped := fmt.Errorf("tool failed: %w", tt.err)
			assert.True(t, tt.check(wrapped), "wrapped errors keep their code")
		})
	}

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain")))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalError("evolution", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "evolution request failed")
}

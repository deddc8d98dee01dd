package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchWithErrorsIs(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		other   error
		message string
	}{
		{
			name:    "not found",
			err:     NotFound("Notebook not found"),
			kind:    ErrNotFound,
			other:   ErrUnauthorized,
			message: "Notebook not found",
		},
		{
			name:    "unauthorized",
			err:     Unauthorized("invalid email or password"),
			kind:    ErrUnauthorized,
			other:   ErrNotFound,
			message: "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.False(t, errors.Is(tt.err, tt.other))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestReason(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NotFound("User not found"))
	assert.Equal(t, "User not found", Reason(wrapped))
	assert.Equal(t, "boom", Reason(errors.New("boom")))
}

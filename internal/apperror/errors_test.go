package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "single violation",
			err:  &ValidationError{Errors: []string{"task cannot depend on itself"}},
			want: "validation failed: task cannot depend on itself",
		},
		{
			name: "multiple violations with cycle",
			err: &ValidationError{
				Errors: []string{"circular dependency detected", "prerequisite t9 does not exist"},
				Cycles: [][]string{{"a", "b", "a"}},
			},
			want: "validation failed: circular dependency detected; prerequisite t9 does not exist (cycles: a -> b -> a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestPersistence(t *testing.T) {
	assert.NoError(t, Persistence("insert tasks", nil))

	cause := fmt.Errorf("connection refused")
	err := Persistence("insert tasks", cause)
	assert.EqualError(t, err, "insert tasks: connection refused")
	assert.ErrorIs(t, err, cause)

	var pe *PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "insert tasks", pe.Op)
}

func TestIsHelpers(t *testing.T) {
	wrapped := fmt.Errorf("load task: %w", &NotFoundError{Kind: "task", ID: "t1"})
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("boom")))

	assert.True(t, IsValidation(fmt.Errorf("create: %w", &ValidationError{Errors: []string{"x"}})))
	assert.False(t, IsValidation(wrapped))
}

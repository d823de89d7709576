package shared

import (
	"strings"
	"testing"

	domainerrors "users/internal/domain/errors"
	"users/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestAgainstNullOrUndefined(t *testing.T) {
	var nilPtr *string
	var nilSlice []string
	value := "set"

	tests := []struct {
		name      string
		value     any
		succeeded bool
	}{
		{name: "nil", value: nil, succeeded: false},
		{name: "empty string", value: "", succeeded: false},
		{name: "nil pointer", value: nilPtr, succeeded: false},
		{name: "nil slice", value: nilSlice, succeeded: false},
		{name: "string", value: "al", succeeded: true},
		{name: "pointer", value: &value, succeeded: true},
		{name: "zero int", value: 0, succeeded: true},
		{name: "false", value: false, succeeded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AgainstNullOrUndefined(tt.value, "username")
			assert.Equal(t, tt.succeeded, result.Succeeded)
			if !tt.succeeded {
				assert.Equal(t, "username is null or undefined", result.Message)
			}
		})
	}
}

func TestAgainstAtLeast(t *testing.T) {
	assert.True(t, AgainstAtLeast(2, "al", "userName").Succeeded)
	assert.True(t, AgainstAtLeast(0, "", "userName").Succeeded)

	result := AgainstAtLeast(2, "a", "userName")
	assert.False(t, result.Succeeded)
	assert.Equal(t, "userName is not at least 2 chars.", result.Message)
}

func TestAgainstAtMost(t *testing.T) {
	assert.True(t, AgainstAtMost(15, strings.Repeat("x", 15), "userName").Succeeded)

	result := AgainstAtMost(15, strings.Repeat("x", 16), "userName")
	assert.False(t, result.Succeeded)
	assert.Equal(t, "userName is greater than 15 chars.", result.Message)
}

func TestGuards_CountCharactersNotBytes(t *testing.T) {
	// 2 characters, 6 bytes
	assert.True(t, AgainstAtLeast(2, "日本", "userName").Succeeded)
	assert.True(t, AgainstAtMost(2, "日本", "userName").Succeeded)
}

func TestCombine_ReturnsFirstFailure(t *testing.T) {
	first := AgainstAtLeast(2, "a", "userName")
	second := AgainstNullOrUndefined(nil, "password")

	assert.Equal(t, first, Combine(AgainstAtMost(15, "a", "userName"), first, second))
	assert.True(t, Combine().Succeeded)
	assert.True(t, Combine(AgainstAtLeast(1, "a", "x"), AgainstAtMost(1, "a", "x")).Succeeded)
}

func TestGuardResult_Err(t *testing.T) {
	assert.NoError(t, AgainstAtLeast(2, "al", "userName").Err(domainerrors.ErrUserNameTooShort))

	err := AgainstAtLeast(2, "a", "userName").Err(domainerrors.ErrUserNameTooShort)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameTooShort))
	assert.Contains(t, err.Error(), "userName is not at least 2 chars.")
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotConfigured", ErrNotConfigured},
		{"ErrIndexInProgress", ErrIndexInProgress},
		{"ErrEmbeddingUnavailable", ErrEmbeddingUnavailable},
		{"ErrStateCorrupt", ErrStateCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Messages tests that error messages are stable
func TestErrors_Messages(t *testing.T) {
	tests := map[string]error{
		"not found":                     ErrNotFound,
		"invalid input":                 ErrInvalidInput,
		"not configured":                ErrNotConfigured,
		"index run in progress":         ErrIndexInProgress,
		"embedding service unavailable": ErrEmbeddingUnavailable,
		"state store corrupt":           ErrStateCorrupt,
	}

	for expectedMsg, err := range tests {
		assert.Equal(t, expectedMsg, err.Error())
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrNotConfigured,
		ErrIndexInProgress,
		ErrEmbeddingUnavailable,
		ErrStateCorrupt,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load graph.json: %w", ErrStateCorrupt)

	assert.True(t, errors.Is(wrapped, ErrStateCorrupt))
	assert.Contains(t, wrapped.Error(), "state store corrupt")

	joined := errors.Join(errors.New("context"), ErrInvalidInput)
	assert.True(t, errors.Is(joined, ErrInvalidInput))
}

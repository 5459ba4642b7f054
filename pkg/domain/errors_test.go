package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeSuccess},
		{"invalid args", fmt.Errorf("%w: empty name", ErrInvalidArgs), CodeInvalidArgs},
		{"capacity", ErrExceedCapacity, CodeExceedCapacity},
		{"duplicate", ErrDuplicate, CodeDuplicate},
		{"external", fmt.Errorf("%w: load", ErrExternalLib), CodeExternalLibError},
		{"completed", ErrProcessCompleted, CodeProcessCompleted},
		{"in progress", ErrInProgress, CodeInProgress},
		{"not ready", ErrNotReady, CodeNotReady},
		{"terminated", fmt.Errorf("%w: read", ErrTerminated), CodeTerminated},
		{"general wins", fmt.Errorf("%w: default: %w", ErrGeneral, ErrDuplicate), CodeGeneralError},
		{"foreign", errors.New("boom"), CodeGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "success", CodeSuccess.String())
	assert.Equal(t, "exceed_capacity", CodeExceedCapacity.String())
	assert.Equal(t, "code(42)", Code(42).String())
}

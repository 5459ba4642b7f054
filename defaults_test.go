package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"+5", 5},
		{"-3", -3},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"99999999999999", 1<<31 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, atoi(tt.in))
		})
	}
}

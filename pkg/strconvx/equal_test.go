package strconvx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/audioforge/audiokit/pkg/strconvx"
)

func strptr(s string) *string {
	return &s
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *string
		b        *string
		expected bool
	}{
		{
			name:     "both absent",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "absent and present",
			a:        nil,
			b:        strptr("x"),
			expected: false,
		},
		{
			name:     "present and absent",
			a:        strptr("x"),
			b:        nil,
			expected: false,
		},
		{
			name:     "absent and present empty",
			a:        nil,
			b:        strptr(""),
			expected: false,
		},
		{
			name:     "both present equal",
			a:        strptr("pipeline"),
			b:        strptr("pipeline"),
			expected: true,
		},
		{
			name:     "both present empty",
			a:        strptr(""),
			b:        strptr(""),
			expected: true,
		},
		{
			name:     "both present different",
			a:        strptr("left"),
			b:        strptr("right"),
			expected: false,
		},
		{
			name:     "case sensitive",
			a:        strptr("True"),
			b:        strptr("true"),
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strconvx.Equal(tt.a, tt.b))
		})
	}
}

func TestEqualN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *string
		b        *string
		n        int
		expected bool
	}{
		{
			name:     "both absent",
			a:        nil,
			b:        nil,
			n:        4,
			expected: true,
		},
		{
			name:     "absent and present",
			a:        nil,
			b:        strptr("abcd"),
			n:        4,
			expected: false,
		},
		{
			name:     "matching prefix",
			a:        strptr("audio-sink"),
			b:        strptr("audio-source"),
			n:        6,
			expected: true,
		},
		{
			name:     "prefix differs",
			a:        strptr("audio-sink"),
			b:        strptr("video-sink"),
			n:        6,
			expected: false,
		},
		{
			name:     "n beyond both lengths equal",
			a:        strptr("ab"),
			b:        strptr("ab"),
			n:        8,
			expected: true,
		},
		{
			name:     "n beyond shorter length differ",
			a:        strptr("ab"),
			b:        strptr("abc"),
			n:        8,
			expected: false,
		},
		{
			name:     "zero n with both present",
			a:        strptr("ab"),
			b:        strptr("cd"),
			n:        0,
			expected: true,
		},
		{
			name:     "negative n with both present",
			a:        strptr("ab"),
			b:        strptr("cd"),
			n:        -1,
			expected: true,
		},
		{
			name:     "zero n with one absent",
			a:        strptr("ab"),
			b:        nil,
			n:        0,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strconvx.EqualN(tt.a, tt.b, tt.n))
		})
	}
}

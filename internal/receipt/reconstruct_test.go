package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "description merged with its computation line",
			lines:    []string{"бойлер atlantic", "1 х 2859.00 = 2859.00"},
			expected: []string{"бойлер atlantic 1 х 2859.00 = 2859.00"},
		},
		{
			name:     "lines without equals pass through",
			lines:    []string{"перший", "другий"},
			expected: []string{"перший", "другий"},
		},
		{
			name: "consumed line is not reconsidered",
			lines: []string{
				"хліб", "1 x 12.00 = 12.00", "2 x 5.00 = 10.00",
			},
			expected: []string{
				"хліб 1 x 12.00 = 12.00", "2 x 5.00 = 10.00",
			},
		},
		{
			name:     "equals line first stays alone",
			lines:    []string{"1 x 12.00 = 12.00", "хліб"},
			expected: []string{"1 x 12.00 = 12.00", "хліб"},
		},
		{
			name: "two pairs merge independently",
			lines: []string{
				"хліб", "1 x 12.00 = 12.00",
				"молоко", "2 x 25.50 = 51.00",
			},
			expected: []string{
				"хліб 1 x 12.00 = 12.00",
				"молоко 2 x 25.50 = 51.00",
			},
		},
		{
			name:     "empty input",
			lines:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reconstruct(tt.lines))
		})
	}
}

func TestSelectCandidate(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "longest equals line wins",
			lines:    []string{"a = b", "бойлер atlantic 1 х 2859.00 = 2859.00", "c = d"},
			expected: "бойлер atlantic 1 х 2859.00 = 2859.00",
		},
		{
			name:     "no equals joins everything",
			lines:    []string{"бойлер", "atlantic"},
			expected: "бойлер atlantic",
		},
		{
			name:     "first of equal length wins",
			lines:    []string{"aa =", "bb ="},
			expected: "aa =",
		},
		{
			name:     "length counted in characters not bytes",
			lines:    []string{"молок=", "abcdefgh="},
			expected: "abcdefgh=",
		},
		{
			name:     "cyrillic line wins when actually longer",
			lines:    []string{"ab=", "молоко="},
			expected: "молоко=",
		},
		{
			name:     "empty input",
			lines:    []string{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selectCandidate(tt.lines))
		})
	}
}

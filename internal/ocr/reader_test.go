package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "trims and drops blanks",
			text:     "  перший  \n\n другий \n",
			expected: []string{"перший", "другий"},
		},
		{
			name:     "single line",
			text:     "сума 12.50",
			expected: []string{"сума 12.50"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     "  \n\t\n  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.text))
		})
	}
}

func TestImageMime(t *testing.T) {
	tests := []struct {
		fileType string
		expected string
	}{
		{"png", "image/png"},
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"tif", "image/tiff"},
		{"tiff", "image/tiff"},
		{"webp", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.fileType, func(t *testing.T) {
			assert.Equal(t, tt.expected, imageMime(tt.fileType))
		})
	}
}

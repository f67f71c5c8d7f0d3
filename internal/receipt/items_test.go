package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  []Item
	}{
		{
			name:      "latin multiplier",
			candidate: "хліб 2 x 10.00 = 20.00",
			expected:  []Item{{Name: "хліб", Price: "20.00"}},
		},
		{
			name:      "cyrillic multiplier",
			candidate: "бойлер atlantic vm 080 1 х 2859.00 = 2859.00",
			expected:  []Item{{Name: "бойлер atlantic vm 080", Price: "2859.00"}},
		},
		{
			name:      "unit fragments around the multiplication",
			candidate: "цукор 2 кг x 32.50 грн = 65.00",
			expected:  []Item{{Name: "цукор", Price: "65.00"}},
		},
		{
			name:      "multiple items in document order",
			candidate: "хліб 2 x 10.00 = 20.00 молоко 1 x 25.50 = 25.50",
			expected: []Item{
				{Name: "хліб", Price: "20.00"},
				{Name: "молоко", Price: "25.50"},
			},
		},
		{
			name:      "fractional quantity",
			candidate: "сир 0.5 x 180.00 = 90.00",
			expected:  []Item{{Name: "сир", Price: "90.00"}},
		},
		{
			name:      "no multiplication expression",
			candidate: "просто текст без цін",
			expected:  []Item{},
		},
		{
			name:      "empty candidate",
			candidate: "",
			expected:  []Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractItems(tt.candidate))
		})
	}
}

func TestExtractItems_NeverNil(t *testing.T) {
	items := extractItems("нічого")
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestFallbackItem(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		total    string
		expected []Item
	}{
		{
			name:     "exactly one lettered line",
			lines:    []string{"бойлер atlantic vm 080", "123 456"},
			total:    "2859.00",
			expected: []Item{{Name: "бойлер atlantic vm 080", Price: "2859.00"}},
		},
		{
			name:     "no lettered lines",
			lines:    []string{"123", ""},
			total:    "10.00",
			expected: nil,
		},
		{
			name:     "two lettered lines is ambiguous",
			lines:    []string{"хліб", "молоко"},
			total:    "10.00",
			expected: nil,
		},
		{
			name:     "empty lines ignored",
			lines:    []string{"", "молоко", ""},
			total:    "25.50",
			expected: []Item{{Name: "молоко", Price: "25.50"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fallbackItem(tt.lines, tt.total))
		})
	}
}

func BenchmarkExtractItems(b *testing.B) {
	candidate := "хліб 2 x 10.00 = 20.00 молоко 1 x 25.50 = 25.50 сир 0.5 x 180.00 = 90.00"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		extractItems(candidate)
	}
}

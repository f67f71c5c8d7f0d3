package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/receipt-processor/internal/money"
)

func TestFromString(t *testing.T) {
	d, err := money.FromString("2859.00")
	require.NoError(t, err)
	assert.Equal(t, "2859.00", money.Format(d))

	_, err = money.FromString("not-a-number")
	require.Error(t, err)
}

func TestSumStrings(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
		wantErr  bool
	}{
		{
			name:     "simple sum",
			values:   []string{"1.00", "2.50"},
			expected: "3.50",
		},
		{
			name:     "mixed precision",
			values:   []string{"1", "2.5", "0.05"},
			expected: "3.55",
		},
		{
			name:     "empty input sums to zero",
			values:   nil,
			expected: "0.00",
		},
		{
			name:    "malformed entry fails the sum",
			values:  []string{"1.00", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := money.SumStrings(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, money.Format(sum))
		})
	}
}

func TestFormat_AlwaysTwoDecimals(t *testing.T) {
	d, err := money.FromString("7")
	require.NoError(t, err)
	assert.Equal(t, "7.00", money.Format(d))
}

package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateZoneBlocks(t *testing.T) {
	tests := []struct {
		name     string
		macros   Macros
		expected ZoneBlocks
	}{
		{
			name:   "reference values",
			macros: Macros{Protein: 111, Carbs: 148, Fat: 49},
			// 111/7=15.857, 148/9=16.444, 49/3=16.333
			expected: ZoneBlocks{ProteinBlocks: 15.9, CarbBlocks: 16.4, FatBlocks: 16.3},
		},
		{
			name:     "exact block multiples",
			macros:   Macros{Protein: 14, Carbs: 18, Fat: 6},
			expected: ZoneBlocks{ProteinBlocks: 2, CarbBlocks: 2, FatBlocks: 2},
		},
		{
			name:     "zero grams",
			macros:   Macros{},
			expected: ZoneBlocks{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateZoneBlocks(tt.macros))
		})
	}
}

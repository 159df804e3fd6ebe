package sizescale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected []string
	}{
		{
			name:     "full adult range",
			token:    "XS-XXXL",
			expected: []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"},
		},
		{
			name:     "S through XXL",
			token:    "S-XXL",
			expected: []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			name:     "single size range",
			token:    "M-M",
			expected: []string{"M"},
		},
		{
			name:     "lowercase with whitespace",
			token:    "  s-xl ",
			expected: []string{"S", "M", "L", "XL"},
		},
		{
			name:     "infant token",
			token:    "6M-12M",
			expected: []string{"6M", "12M"},
		},
		{
			name:     "sock token",
			token:    "S/M-L/XL",
			expected: []string{"S/M", "L/XL"},
		},
		{
			name:     "not applicable sentinel",
			token:    "N/A",
			expected: []string{},
		},
		{
			name:     "empty token",
			token:    "",
			expected: []string{},
		},
		{
			name:     "reversed range",
			token:    "XL-S",
			expected: []string{},
		},
		{
			name:     "unknown start code",
			token:    "XXS-L",
			expected: []string{},
		},
		{
			name:     "unknown end code",
			token:    "S-HUGE",
			expected: []string{},
		},
		{
			name:     "too many separators",
			token:    "S-M-L",
			expected: []string{},
		},
		{
			name:     "no separator",
			token:    "SM",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.token))
		})
	}
}

func TestExpand_Idempotent(t *testing.T) {
	for _, token := range []string{"S-XXL", "XS-M", "6M-12M", "S/M-L/XL", "N/A", "garbage"} {
		first := Expand(token)
		second := Expand(token)
		assert.Equal(t, first, second, "token %q", token)
	}
}

func TestExpand_AllValidRanges(t *testing.T) {
	// Every inclusive sub-sequence of the vocabulary must come back exactly.
	for i := range Vocabulary {
		for j := i; j < len(Vocabulary); j++ {
			token := Vocabulary[i] + "-" + Vocabulary[j]
			assert.Equal(t, Vocabulary[i:j+1], Expand(token), "token %q", token)
		}
	}
}

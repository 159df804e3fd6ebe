package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threadline/ratio-service/internal/domain/model"
)

func TestTotal(t *testing.T) {
	assert.Equal(t, 0, Total(nil))
	assert.Equal(t, 0, Total(model.SizeCounts{}))
	assert.Equal(t, 11, Total(model.SizeCounts{"S": 3, "M": 3, "L": 3, "XL": 2}))
}

func TestIncrement(t *testing.T) {
	counts := model.SizeCounts{"S": 2}

	up := Increment(counts, "S", 1)
	assert.Equal(t, 3, up["S"])

	down := Increment(counts, "S", -5)
	assert.Equal(t, 0, down["S"], "quantity clamps at zero")

	fresh := Increment(counts, "M", 1)
	assert.Equal(t, 1, fresh["M"])

	// Input is never mutated.
	assert.Equal(t, model.SizeCounts{"S": 2}, counts)
}

func TestSetFromInput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		pack     int
		allowAny bool
		expected int
	}{
		{name: "rounds 10 to nearest multiple of 7", raw: "10", pack: 7, expected: 7},
		{name: "rounds 11 up to 14", raw: "11", pack: 7, expected: 14},
		{name: "tie rounds up", raw: "6", pack: 4, expected: 8},
		{name: "exact multiple unchanged", raw: "14", pack: 7, expected: 14},
		{name: "small value rounds to zero", raw: "3", pack: 7, expected: 0},
		{name: "allowAny keeps raw value", raw: "10", pack: 7, allowAny: true, expected: 10},
		{name: "non-digits stripped", raw: "1a2b", pack: 12, expected: 12},
		{name: "no digits is zero", raw: "abc", pack: 12, expected: 0},
		{name: "empty input is zero", raw: "", pack: 12, expected: 0},
		{name: "zero pack leaves value alone", raw: "10", pack: 0, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SetFromInput(model.SizeCounts{}, "M", tt.raw, tt.pack, tt.allowAny)
			assert.Equal(t, tt.expected, out["M"])
		})
	}
}

func TestPackValidity(t *testing.T) {
	tests := []struct {
		name     string
		counts   model.SizeCounts
		pack     int
		allowAny bool
		expected model.PackValidity
	}{
		{
			name:     "one short of a pack",
			counts:   model.SizeCounts{"S": 3, "M": 3, "L": 3, "XL": 2},
			pack:     12,
			expected: model.PackValidity{Total: 11, IsValid: false, Needed: 1},
		},
		{
			name:     "exact pack",
			counts:   model.SizeCounts{"S": 3, "M": 3, "L": 3, "XL": 3},
			pack:     12,
			expected: model.PackValidity{Total: 12, IsValid: true, Needed: 0},
		},
		{
			name:     "two exact packs",
			counts:   model.SizeCounts{"S": 24},
			pack:     12,
			expected: model.PackValidity{Total: 24, IsValid: true, Needed: 0},
		},
		{
			name:     "all zero needs a whole pack",
			counts:   model.SizeCounts{"S": 0, "M": 0},
			pack:     12,
			expected: model.PackValidity{Total: 0, IsValid: true, Needed: 12},
		},
		{
			name:     "allowAny always valid",
			counts:   model.SizeCounts{"S": 5},
			pack:     12,
			allowAny: true,
			expected: model.PackValidity{Total: 5, IsValid: true, Needed: 0},
		},
		{
			name:     "no pack size always valid",
			counts:   model.SizeCounts{"S": 5},
			pack:     0,
			expected: model.PackValidity{Total: 5, IsValid: true, Needed: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PackValidity(tt.counts, tt.pack, tt.allowAny))
		})
	}
}

func TestClear(t *testing.T) {
	out := Clear([]string{"S", "M", "L"})
	assert.Equal(t, model.SizeCounts{"S": 0, "M": 0, "L": 0}, out)
	assert.Empty(t, Clear(nil))
}

func TestEvenSplit(t *testing.T) {
	sizes := []string{"S", "M", "L", "XL", "XXL"}

	out := EvenSplit(Clear(sizes), sizes, 12)
	// 12 over 5 sizes: base 2, first two sizes get the extra unit.
	assert.Equal(t, model.SizeCounts{"S": 3, "M": 3, "L": 2, "XL": 2, "XXL": 2}, out)
	assert.Equal(t, 12, Total(out))

	// Splitting adds on top of existing quantities.
	again := EvenSplit(out, sizes, 12)
	assert.Equal(t, 24, Total(again))
	assert.Equal(t, 6, again["S"])

	// Degenerate inputs return the counts unchanged.
	assert.Equal(t, model.SizeCounts{"S": 1}, EvenSplit(model.SizeCounts{"S": 1}, nil, 12))
	assert.Equal(t, model.SizeCounts{"S": 1}, EvenSplit(model.SizeCounts{"S": 1}, sizes, 0))
}

func TestEvenSplit_AlwaysAddsExactlyOnePack(t *testing.T) {
	sizes := []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}
	for pack := 1; pack <= 48; pack++ {
		out := EvenSplit(Clear(sizes), sizes, pack)
		assert.Equal(t, pack, Total(out), "pack %d", pack)

		min, max := out[sizes[0]], out[sizes[0]]
		for _, s := range sizes {
			if out[s] < min {
				min = out[s]
			}
			if out[s] > max {
				max = out[s]
			}
		}
		assert.LessOrEqual(t, max-min, 1, "pack %d spreads unevenly", pack)
	}
}

// Package allocation implements the stateless pack/size computations used
// while a size-quantity editor is open. Every function is a pure transform
// of its inputs, cheap enough to run on each keystroke.
package allocation

import (
	"math"

	"github.com/threadline/ratio-service/internal/domain/model"
)

// Total returns the sum of all size quantities.
func Total(counts model.SizeCounts) int {
	total := 0
	for _, q := range counts {
		total += q
	}
	return total
}

// Increment steps one size by delta, clamping at zero. Stepping is
// unconstrained by pack alignment so +/- controls stay responsive.
func Increment(counts model.SizeCounts, size string, delta int) model.SizeCounts {
	out := counts.Clone()
	q := out[size] + delta
	if q < 0 {
		q = 0
	}
	out[size] = q
	return out
}

// SetFromInput applies free-typed quantity text to one size. Only digits in
// raw are considered; everything else is a typing transient coerced to a
// safe value. When allowAny is false the parsed quantity is rounded to the
// nearest multiple of pack, ties rounding up.
func SetFromInput(counts model.SizeCounts, size, raw string, pack int, allowAny bool) model.SizeCounts {
	out := counts.Clone()
	q := parseDigits(raw)
	if !allowAny && pack > 0 {
		q = int(math.Round(float64(q)/float64(pack))) * pack
	}
	out[size] = q
	return out
}

// PackValidity reports the running total, whether it lands on a pack
// boundary, and how many more units would complete the next pack. An
// all-zero allocation needs a whole pack: it has not committed to one yet.
// With allowAny set, validity is always reported true.
func PackValidity(counts model.SizeCounts, pack int, allowAny bool) model.PackValidity {
	total := Total(counts)
	if allowAny || pack <= 0 {
		return model.PackValidity{Total: total, IsValid: true}
	}

	rem := total % pack
	v := model.PackValidity{
		Total:   total,
		IsValid: rem == 0,
	}
	switch {
	case total == 0:
		v.Needed = pack
	case rem != 0:
		v.Needed = pack - rem
	}
	return v
}

// Clear returns a counts map with every active size zeroed.
func Clear(sizes []string) model.SizeCounts {
	out := make(model.SizeCounts, len(sizes))
	for _, s := range sizes {
		out[s] = 0
	}
	return out
}

// EvenSplit adds one pack of units on top of the existing quantities,
// distributed as evenly as possible across the active sizes. The first
// pack%len(sizes) sizes, in active-size order, receive the extra unit.
func EvenSplit(counts model.SizeCounts, sizes []string, pack int) model.SizeCounts {
	out := counts.Clone()
	if len(sizes) == 0 || pack <= 0 {
		return out
	}

	base := pack / len(sizes)
	extra := pack % len(sizes)
	for i, s := range sizes {
		out[s] += base
		if i < extra {
			out[s]++
		}
	}
	return out
}

// parseDigits extracts the digit characters from raw and parses them as a
// non-negative integer. No digits means zero.
func parseDigits(raw string) int {
	q := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		q = q*10 + int(r-'0')
		if q > math.MaxInt32 {
			return math.MaxInt32
		}
	}
	return q
}

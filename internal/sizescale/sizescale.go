// Package sizescale expands compact size-range tokens into ordered size
// code sequences.
package sizescale

import "strings"

// NotApplicable is the sentinel scale for garments with no size breakdown.
// Their pack size is an ordering increment, not a distribution target.
const NotApplicable = "N/A"

// Special multi-value tokens. Neither follows the linear vocabulary rule.
const (
	// InfantToken expands to the two age-based infant codes.
	InfantToken = "6M-12M"
	// SockToken expands to the two paired letter-range codes.
	SockToken = "S/M-L/XL"
)

// Vocabulary is the fixed, totally ordered adult size vocabulary.
var Vocabulary = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// Expand turns a range token into an ordered sequence of size codes.
//
// The sentinel and empty input expand to an empty sequence. The two special
// tokens expand to their fixed pairs. Everything else must be "start-end"
// over the vocabulary; malformed tokens expand to an empty sequence so
// callers always have something to iterate.
func Expand(token string) []string {
	token = strings.TrimSpace(token)
	if token == "" || strings.EqualFold(token, NotApplicable) {
		return []string{}
	}

	switch strings.ToUpper(token) {
	case InfantToken:
		return []string{"6M", "12M"}
	case SockToken:
		return []string{"S/M", "L/XL"}
	}

	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return []string{}
	}
	start := index(parts[0])
	end := index(parts[1])
	if start < 0 || end < 0 || start > end {
		return []string{}
	}

	out := make([]string, 0, end-start+1)
	out = append(out, Vocabulary[start:end+1]...)
	return out
}

// index returns the vocabulary position of a size code, or -1.
func index(code string) int {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, v := range Vocabulary {
		if v == code {
			return i
		}
	}
	return -1
}

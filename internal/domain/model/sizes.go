package model

// SizeCounts is an in-progress mapping of size code to quantity for one
// order line. It is the working value of the allocation engine and is not
// persisted on its own.
type SizeCounts map[string]int

// Clone returns a shallow copy safe for pure transforms.
func (c SizeCounts) Clone() SizeCounts {
	out := make(SizeCounts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// PackValidity reports how an allocation stands against its pack size.
type PackValidity struct {
	// Total is the sum of all size quantities.
	Total int `json:"total"`
	// IsValid is true when the total is an exact multiple of the pack size.
	IsValid bool `json:"is_valid"`
	// Needed is the smallest quantity to add to reach the next full pack.
	// An all-zero allocation reports a whole pack.
	Needed int `json:"needed"`
}

// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/threadline/ratio-service/internal/domain/model"

// ResolveQuery carries the query parameters of the ratio resolution endpoint.
type ResolveQuery struct {
	// Category is the catalog category path, e.g. "Apparel > Hoodies".
	Category string `form:"category" binding:"required"`
	// Style is the optional style descriptor, e.g. "Long Sleeve".
	Style string `form:"style"`
	// Organization is the optional organization scope key.
	Organization string `form:"organization"`
}

// AllocationValidityRequest represents the JSON request body for the
// allocation validity endpoint.
type AllocationValidityRequest struct {
	// Counts maps size codes to entered quantities.
	Counts model.SizeCounts `json:"counts" binding:"required"`
	// Pack is the declared pack size the total must be a multiple of.
	Pack int `json:"pack"`
	// AllowAny disables the pack multiple requirement.
	AllowAny bool `json:"allow_any"`
}

// AllocationSplitRequest represents the JSON request body for the even
// pack split endpoint.
type AllocationSplitRequest struct {
	// Counts maps size codes to current quantities. The split is added on top.
	Counts model.SizeCounts `json:"counts"`
	// Sizes is the ordered list of size codes to spread one pack across.
	Sizes []string `json:"sizes" binding:"required,min=1"`
	// Pack is the pack size to spread.
	Pack int `json:"pack" binding:"required,gt=0"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidPack is returned when pack is not a positive integer.
	ErrInvalidPack = &ValidationError{
		Field:   "pack",
		Message: "must be a positive integer",
	}

	// ErrNoSizes is returned when a split request names no sizes.
	ErrNoSizes = &ValidationError{
		Field:   "sizes",
		Message: "must name at least one size",
	}

	// ErrNegativeCount is returned when a quantity is negative.
	ErrNegativeCount = &ValidationError{
		Field:   "counts",
		Message: "quantities must not be negative",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AllocationValidityRequest) Validate() error {
	if r.Pack < 0 {
		return ErrInvalidPack
	}
	for _, n := range r.Counts {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *AllocationSplitRequest) Validate() error {
	if r.Pack <= 0 {
		return ErrInvalidPack
	}
	if len(r.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, n := range r.Counts {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}

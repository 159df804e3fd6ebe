// Package garment maps catalog categories and styles to canonical garment
// identifiers, the join key between catalog items and packing rules.
package garment

import "strings"

// Canonical garment identifiers.
const (
	ShortSleeveShirt = "Short Sleeve Shirt"
	LongSleeveShirt  = "Long Sleeve Shirt"
	Hoodie           = "Hoodie"
	Crewneck         = "Crewneck"
	Sweatpant        = "Sweatpant"
	Jogger           = "Jogger"
	Jacket           = "Jacket"
	Flannel          = "Flannel"
	Sock             = "Sock"
	Short            = "Short"
	InfantTee        = "Infant Tee"
	Sticker          = "Sticker"
	Plush            = "Plush"
	Bottle           = "Bottle"
	DisplayRack      = "Display Rack"
)

// Identify resolves a catalog category path, plus an optional style token,
// to a canonical garment identifier. The second return is false when the
// item carries no packing rule, which is a normal state for accessories and
// single-unit items, not an error.
//
// Matching is case-insensitive and whitespace-trimmed. Style-specific rules
// are checked before broad category families, so a jogger-styled pant wins
// over the generic sweatpant rule.
func Identify(categoryPath, style string) (string, bool) {
	category := strings.ToLower(strings.TrimSpace(categoryPath))
	styleToken := strings.ToLower(strings.TrimSpace(style))
	if category == "" {
		return "", false
	}

	// Infant apparel outranks the shirt family: an infant tee category also
	// contains "tee".
	if strings.Contains(category, "infant") || strings.Contains(category, "onesie") {
		return InfantTee, true
	}

	// Shirt family branches on sleeve style.
	if strings.Contains(category, "shirt") || strings.Contains(category, "tee") {
		if strings.Contains(styleToken, "long") {
			return LongSleeveShirt, true
		}
		return ShortSleeveShirt, true
	}

	if strings.Contains(category, "hoodie") || strings.Contains(category, "hooded") {
		return Hoodie, true
	}
	if strings.Contains(category, "crew") {
		return Crewneck, true
	}

	// Pants family branches on the jogger style.
	if strings.Contains(category, "pant") {
		if strings.Contains(styleToken, "jogger") || strings.Contains(category, "jogger") {
			return Jogger, true
		}
		return Sweatpant, true
	}

	// Broad families: one identifier each, style ignored.
	switch {
	case strings.Contains(category, "jacket"):
		return Jacket, true
	case strings.Contains(category, "flannel"):
		return Flannel, true
	case strings.Contains(category, "sock"):
		return Sock, true
	case strings.Contains(category, "short"):
		return Short, true
	case strings.Contains(category, "sticker"):
		return Sticker, true
	case strings.Contains(category, "plush"):
		return Plush, true
	case strings.Contains(category, "bottle"):
		return Bottle, true
	case strings.Contains(category, "signage"), strings.Contains(category, "display"):
		return DisplayRack, true
	}

	return "", false
}

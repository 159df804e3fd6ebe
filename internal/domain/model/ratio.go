// Package model defines the core domain entities for the ratio service.
package model

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// VariableMarker is the stored sentinel for sizes sold without a fixed
// per-pack count. It counts as zero when a distribution is summed.
const VariableMarker = "variable"

// DefaultScope is the scope key shared by every organization without an
// override document of its own.
const DefaultScope = "default"

// PackCount is one per-size quantity inside a packing rule. It is either a
// fixed non-negative integer or the "variable" sentinel.
type PackCount struct {
	N        int
	Variable bool
}

// Fixed returns a PackCount holding a fixed quantity.
func Fixed(n int) PackCount {
	return PackCount{N: n}
}

// Variable returns the "variable per size" sentinel count.
func Variable() PackCount {
	return PackCount{Variable: true}
}

// Units returns the quantity this count contributes to a distribution sum.
// Variable counts contribute zero.
func (c PackCount) Units() int {
	if c.Variable {
		return 0
	}
	return c.N
}

// MarshalJSON encodes the count as a number, or as the sentinel string.
func (c PackCount) MarshalJSON() ([]byte, error) {
	if c.Variable {
		return []byte(`"` + VariableMarker + `"`), nil
	}
	return []byte(strconv.Itoa(c.N)), nil
}

// UnmarshalJSON accepts a number or the sentinel string. Anything else
// decodes as zero, matching the read-side leniency of the rest of the core.
func (c *PackCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted := strings.Trim(s, `"`)
		if strings.EqualFold(unquoted, VariableMarker) {
			*c = Variable()
			return nil
		}
		if n, err := strconv.Atoi(unquoted); err == nil {
			*c = Fixed(n)
			return nil
		}
		*c = Fixed(0)
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = Fixed(0)
		return nil
	}
	*c = Fixed(n)
	return nil
}

// MarshalBSONValue stores the count as an int32, or as the sentinel string.
func (c PackCount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.Variable {
		return bson.MarshalValue(VariableMarker)
	}
	return bson.MarshalValue(int32(c.N))
}

// UnmarshalBSONValue accepts numeric values and the sentinel string.
func (c *PackCount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		s := rv.StringValue()
		if strings.EqualFold(s, VariableMarker) {
			*c = Variable()
			return nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			*c = Fixed(n)
			return nil
		}
		*c = Fixed(0)
		return nil
	case bson.TypeInt32:
		*c = Fixed(int(rv.Int32()))
		return nil
	case bson.TypeInt64:
		*c = Fixed(int(rv.Int64()))
		return nil
	case bson.TypeDouble:
		*c = Fixed(int(rv.Double()))
		return nil
	case bson.TypeNull:
		*c = Fixed(0)
		return nil
	default:
		*c = Fixed(0)
		return nil
	}
}

// PairedSizes holds the nested paired-size counts used by sock-type garments.
type PairedSizes struct {
	SM  *PackCount `bson:"SM,omitempty" json:"SM,omitempty"`
	LXL *PackCount `bson:"LXL,omitempty" json:"LXL,omitempty"`
}

// GarmentRatio is one packing rule for a canonical garment. Field names
// match the stored document keys exactly; absent size fields stay nil.
type GarmentRatio struct {
	Name         string       `bson:"Name" json:"Name"`
	SetPack      *int         `bson:"Set Pack,omitempty" json:"Set Pack,omitempty"`
	SizeScale    string       `bson:"Size Scale,omitempty" json:"Size Scale,omitempty"`
	XS           *PackCount   `bson:"XS,omitempty" json:"XS,omitempty"`
	Small        *PackCount   `bson:"Small,omitempty" json:"Small,omitempty"`
	Medium       *PackCount   `bson:"Medium,omitempty" json:"Medium,omitempty"`
	Large        *PackCount   `bson:"Large,omitempty" json:"Large,omitempty"`
	XL           *PackCount   `bson:"XL,omitempty" json:"XL,omitempty"`
	TwoXL        *PackCount   `bson:"2X,omitempty" json:"2X,omitempty"`
	ThreeXL      *PackCount   `bson:"3X,omitempty" json:"3X,omitempty"`
	SixMonths    *PackCount   `bson:"6M,omitempty" json:"6M,omitempty"`
	TwelveMonths *PackCount   `bson:"12M,omitempty" json:"12M,omitempty"`
	Sizes        *PairedSizes `bson:"Sizes,omitempty" json:"Sizes,omitempty"`
}

// PackSize returns the declared pack size, or zero when the rule is nil or
// not yet configured.
func (g *GarmentRatio) PackSize() int {
	if g == nil || g.SetPack == nil {
		return 0
	}
	return *g.SetPack
}

// Scale returns the size-scale token, or the empty string for a nil rule.
func (g *GarmentRatio) Scale() string {
	if g == nil {
		return ""
	}
	return g.SizeScale
}

// Count returns the stored count for a presentation size code. The second
// return is false when the code is unknown or the field is absent.
func (g *GarmentRatio) Count(code string) (PackCount, bool) {
	if g == nil {
		return PackCount{}, false
	}
	var field *PackCount
	switch code {
	case "XS":
		field = g.XS
	case "S":
		field = g.Small
	case "M":
		field = g.Medium
	case "L":
		field = g.Large
	case "XL":
		field = g.XL
	case "XXL":
		field = g.TwoXL
	case "XXXL":
		field = g.ThreeXL
	case "6M":
		field = g.SixMonths
	case "12M":
		field = g.TwelveMonths
	case "S/M":
		if g.Sizes != nil {
			field = g.Sizes.SM
		}
	case "L/XL":
		if g.Sizes != nil {
			field = g.Sizes.LXL
		}
	default:
		return PackCount{}, false
	}
	if field == nil {
		return PackCount{}, false
	}
	return *field, true
}

// SetCount stores a count under a presentation size code. Unknown codes are
// ignored.
func (g *GarmentRatio) SetCount(code string, c PackCount) {
	if g == nil {
		return
	}
	switch code {
	case "XS":
		g.XS = &c
	case "S":
		g.Small = &c
	case "M":
		g.Medium = &c
	case "L":
		g.Large = &c
	case "XL":
		g.XL = &c
	case "XXL":
		g.TwoXL = &c
	case "XXXL":
		g.ThreeXL = &c
	case "6M":
		g.SixMonths = &c
	case "12M":
		g.TwelveMonths = &c
	case "S/M":
		if g.Sizes == nil {
			g.Sizes = &PairedSizes{}
		}
		g.Sizes.SM = &c
	case "L/XL":
		if g.Sizes == nil {
			g.Sizes = &PairedSizes{}
		}
		g.Sizes.LXL = &c
	}
}

// Distribution projects the stored per-size fields onto presentation size
// codes. Variable counts project as zero; absent fields are omitted. A nil
// rule projects as an empty map.
func (g *GarmentRatio) Distribution() map[string]int {
	dist := make(map[string]int)
	if g == nil {
		return dist
	}
	for _, code := range distributionCodes {
		if c, ok := g.Count(code); ok {
			dist[code] = c.Units()
		}
	}
	return dist
}

// distributionCodes lists every presentation size code a rule can store.
var distributionCodes = []string{
	"XS", "S", "M", "L", "XL", "XXL", "XXXL", "6M", "12M", "S/M", "L/XL",
}

// DistributionSum sums the stored distribution over the given size codes.
// Absent fields and variable counts contribute zero.
func (g *GarmentRatio) DistributionSum(codes []string) int {
	sum := 0
	for _, code := range codes {
		if c, ok := g.Count(code); ok {
			sum += c.Units()
		}
	}
	return sum
}

// Clone returns a deep copy of the rule, safe to mutate as an edit draft.
func (g *GarmentRatio) Clone() *GarmentRatio {
	if g == nil {
		return nil
	}
	out := &GarmentRatio{Name: g.Name, SizeScale: g.SizeScale}
	if g.SetPack != nil {
		v := *g.SetPack
		out.SetPack = &v
	}
	clone := func(c *PackCount) *PackCount {
		if c == nil {
			return nil
		}
		v := *c
		return &v
	}
	out.XS = clone(g.XS)
	out.Small = clone(g.Small)
	out.Medium = clone(g.Medium)
	out.Large = clone(g.Large)
	out.XL = clone(g.XL)
	out.TwoXL = clone(g.TwoXL)
	out.ThreeXL = clone(g.ThreeXL)
	out.SixMonths = clone(g.SixMonths)
	out.TwelveMonths = clone(g.TwelveMonths)
	if g.Sizes != nil {
		out.Sizes = &PairedSizes{SM: clone(g.Sizes.SM), LXL: clone(g.Sizes.LXL)}
	}
	return out
}

// Merge overlays the set fields of update onto the receiver. Nil pointers
// and an empty scale in update leave the existing values in place.
func (g *GarmentRatio) Merge(update GarmentRatio) {
	if g == nil {
		return
	}
	if update.SetPack != nil {
		v := *update.SetPack
		g.SetPack = &v
	}
	if update.SizeScale != "" {
		g.SizeScale = update.SizeScale
	}
	for _, code := range distributionCodes {
		if c, ok := (&update).Count(code); ok {
			g.SetCount(code, c)
		}
	}
}

// RatioScope is a persisted per-scope packing rule document. The document
// key is the scope itself: "default" or an organization key.
type RatioScope struct {
	Key             string         `bson:"_id" json:"key"`
	Ratios          []GarmentRatio `bson:"ratios" json:"ratios"`
	OrganizationKey string         `bson:"organizationKey,omitempty" json:"organizationKey,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// FindRatio returns the rule matching name, compared case-insensitively.
func (s *RatioScope) FindRatio(name string) *GarmentRatio {
	if s == nil {
		return nil
	}
	for i := range s.Ratios {
		if strings.EqualFold(s.Ratios[i].Name, name) {
			return &s.Ratios[i]
		}
	}
	return nil
}

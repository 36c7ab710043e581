// Package tier defines the ordinal loyalty levels used by the discount model.
package tier

import "strings"

// Tier is an ordinal loyalty level. Higher values indicate more loyal
// customers and feed the model as a numeric feature.
type Tier int

// Known tiers, increasing in loyalty.
const (
	Bronze Tier = iota
	Silver
	Gold
	Platinum
)

// names maps canonical lowercase names to tiers.
var names = map[string]Tier{ //nolint:gochecknoglobals // fixed lookup table
	"bronze":   Bronze,
	"silver":   Silver,
	"gold":     Gold,
	"platinum": Platinum,
}

// Parse maps a tier name to its ordinal level. Matching is case-insensitive
// and ignores surrounding whitespace; unknown names map to Bronze.
func Parse(s string) Tier {
	if t, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return Bronze
}

// Ordinal returns the tier as a model feature value.
func (t Tier) Ordinal() float64 {
	return float64(t)
}

// String returns the canonical lowercase name.
func (t Tier) String() string {
	switch t {
	case Bronze:
		return "bronze"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	case Platinum:
		return "platinum"
	default:
		return "bronze"
	}
}

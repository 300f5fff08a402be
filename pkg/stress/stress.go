// Package stress maps UTCI values onto the ten thermal stress categories of
// the UTCI assessment scale.
package stress

import "math"

// Category is a UTCI thermal stress band, ordered from cold to hot.
type Category int

const (
	Unknown Category = iota // NaN input
	ExtremeCold
	VeryStrongCold
	StrongCold
	ModerateCold
	SlightCold
	NoStress
	ModerateHeat
	StrongHeat
	VeryStrongHeat
	ExtremeHeat
)

// lower edges of ExtremeCold..ExtremeHeat, °C. A value belongs to the last
// band whose edge it reaches.
var edges = [...]float64{math.Inf(-1), -40, -27, -13, 0, 9, 26, 32, 38, 46}

func (c Category) String() string {
	switch c {
	case ExtremeCold:
		return "extreme cold stress"
	case VeryStrongCold:
		return "very strong cold stress"
	case StrongCold:
		return "strong cold stress"
	case ModerateCold:
		return "moderate cold stress"
	case SlightCold:
		return "slight cold stress"
	case NoStress:
		return "no thermal stress"
	case ModerateHeat:
		return "moderate heat stress"
	case StrongHeat:
		return "strong heat stress"
	case VeryStrongHeat:
		return "very strong heat stress"
	case ExtremeHeat:
		return "extreme heat stress"
	default:
		return "unknown"
	}
}

// Classify returns the category for a UTCI value in °C.
func Classify(utci float64) Category {
	if math.IsNaN(utci) {
		return Unknown
	}
	c := ExtremeCold
	for i := 1; i < len(edges); i++ {
		if utci < edges[i] {
			break
		}
		c++
	}
	return c
}

// Bounds returns the half-open interval [lo, hi) covered by c. The outer
// bands extend to ±Inf. Unknown yields NaN for both.
func (c Category) Bounds() (lo, hi float64) {
	if c < ExtremeCold || c > ExtremeHeat {
		return math.NaN(), math.NaN()
	}
	i := int(c - ExtremeCold)
	lo = edges[i]
	if i+1 < len(edges) {
		return lo, edges[i+1]
	}
	return lo, math.Inf(1)
}

// Cold reports whether c is one of the cold stress bands.
func (c Category) Cold() bool { return c >= ExtremeCold && c <= SlightCold }

// Heat reports whether c is one of the heat stress bands.
func (c Category) Heat() bool { return c >= ModerateHeat && c <= ExtremeHeat }

// Categories lists all bands from ExtremeCold to ExtremeHeat.
func Categories() []Category {
	out := make([]Category, 0, ExtremeHeat-ExtremeCold+1)
	for c := ExtremeCold; c <= ExtremeHeat; c++ {
		out = append(out, c)
	}
	return out
}

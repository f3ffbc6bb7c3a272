package conversion

import "easyconvert.app/internal/units"

// Convert maps raw from the input interpretation to the output one through the family's base
// unit. Prefix scaling wraps the unit transform on both sides.
func Convert(raw float64, in, out units.Match) float64 {
	base := in.Unit.ToBase(raw * prefixValue(in))
	return out.Unit.FromBase(base) / prefixValue(out)
}

func prefixValue(m units.Match) float64 {
	if m.Prefix == nil {
		return 1
	}
	return m.Prefix.Value
}

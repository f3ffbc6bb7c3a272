// Package units holds the unit catalog: unit definitions, magnitude prefixes, alias lookup,
// prefix resolution and catalog validation. A Registry is immutable once built and is safe to
// share between goroutines.
package units

import (
	"errors"
	"fmt"
)

var (
	errEmptyName      = errors.New("empty display name")
	errMissingKeyword = errors.New("compound naming requires a keyword")
	errUnknownNaming  = errors.New("unknown naming kind")

	// ErrInvalidCatalog is returned when a catalog table fails validation.
	ErrInvalidCatalog = errors.New("invalid unit catalog")
)

// Transform maps a value to and from its family's base unit:
//
//	toBase(x)   = (x - Offset) * Scale
//	fromBase(y) = y / Scale + Offset
//
// Offset is zero for every family except temperature.
type Transform struct {
	Scale  float64 `yaml:"scale" json:"scale"`
	Offset float64 `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// UnitDefinition describes one unit. Definitions are never mutated after registration.
type UnitDefinition struct {
	Type      string    `yaml:"type" json:"type"`
	Metric    bool      `yaml:"metric" json:"metric"`
	Aliases   []string  `yaml:"aliases" json:"aliases"`
	Naming    Naming    `yaml:"naming" json:"naming"`
	Transform Transform `yaml:"transform" json:"transform"`
}

// Name returns the display name, optionally with a prefix display name ("Kilo") applied.
func (u *UnitDefinition) Name(prefix string, plural bool) string {
	return u.Naming.Name(prefix, plural)
}

// String returns the singular, unprefixed display name.
func (u *UnitDefinition) String() string {
	return u.Naming.Name("", false)
}

// ToBase converts a value in this unit to the family's base unit.
func (u *UnitDefinition) ToBase(v float64) float64 {
	return (v - u.Transform.Offset) * u.Transform.Scale
}

// FromBase converts a value in the family's base unit to this unit.
func (u *UnitDefinition) FromBase(v float64) float64 {
	return v/u.Transform.Scale + u.Transform.Offset
}

// HasAlias reports whether alias names this unit, compared case-sensitively.
func (u *UnitDefinition) HasAlias(alias string) bool {
	for _, a := range u.Aliases {
		if a == alias {
			return true
		}
	}
	return false
}

func (u *UnitDefinition) validate() error {
	if u.Type == "" {
		return fmt.Errorf("unit %q: empty type", u.Naming.Singular)
	}
	if len(u.Aliases) == 0 {
		return fmt.Errorf("unit %q: no aliases", u.Naming.Singular)
	}
	if u.Transform.Scale == 0 {
		return fmt.Errorf("unit %q: zero scale", u.Naming.Singular)
	}
	if err := u.Naming.validate(); err != nil {
		return fmt.Errorf("unit %q: %w", u.Naming.Singular, err)
	}
	return nil
}

// linear builds a definition whose base transform is a plain scale factor.
func linear(family string, metric bool, naming Naming, scale float64, aliases ...string) UnitDefinition {
	return UnitDefinition{
		Type:      family,
		Metric:    metric,
		Aliases:   aliases,
		Naming:    naming,
		Transform: Transform{Scale: scale},
	}
}

// affine builds a definition with an offset, used by temperatures.
func affine(family string, metric bool, naming Naming, offset, scale float64, aliases ...string) UnitDefinition {
	return UnitDefinition{
		Type:      family,
		Metric:    metric,
		Aliases:   aliases,
		Naming:    naming,
		Transform: Transform{Scale: scale, Offset: offset},
	}
}

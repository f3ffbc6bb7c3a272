package models

import (
	"strings"

	"easyconvert.app/internal/units"
)

// Unit is the API view of a unit definition.
type Unit struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Plural  string   `json:"plural"`
	Type    string   `json:"type"`
	Metric  bool     `json:"metric"`
	Aliases []string `json:"aliases"`
}

// NewUnit builds the API view of u. The id is the family and the singular name, which is
// unique within a valid catalog.
func NewUnit(u *units.UnitDefinition) Unit {
	return Unit{
		ID:      UnitID(u),
		Name:    u.Name("", false),
		Plural:  u.Name("", true),
		Type:    u.Type,
		Metric:  u.Metric,
		Aliases: append([]string{}, u.Aliases...),
	}
}

func UnitID(u *units.UnitDefinition) string {
	return u.Type + "_" + strings.ReplaceAll(strings.ToLower(u.Name("", false)), " ", "-")
}

func NewUnits(defs []*units.UnitDefinition) []Unit {
	out := make([]Unit, 0, len(defs))
	for _, d := range defs {
		out = append(out, NewUnit(d))
	}
	return out
}

// Prefix is the API view of a magnitude prefix.
type Prefix struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Value   float64  `json:"value"`
}

func NewPrefix(p *units.MetricPrefix) Prefix {
	return Prefix{
		Name:    p.DisplayName,
		Aliases: append([]string{}, p.Aliases...),
		Value:   p.Value,
	}
}

func NewPrefixes(prefixes []*units.MetricPrefix) []Prefix {
	out := make([]Prefix, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, NewPrefix(p))
	}
	return out
}

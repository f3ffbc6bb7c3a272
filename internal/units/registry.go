package units

import (
	"fmt"
	"strings"
)

// Filter narrows a unit lookup. The zero value matches every unit.
type Filter struct {
	// Metric, when set, keeps only units whose Metric flag equals *Metric.
	Metric *bool
	// Type, when non-empty, keeps only units of that family.
	Type string
}

// MetricOnly is the filter used after a prefix has been stripped.
func MetricOnly(family string) Filter {
	metric := true
	return Filter{Metric: &metric, Type: family}
}

func (f Filter) keep(u *UnitDefinition) bool {
	if f.Metric != nil && u.Metric != *f.Metric {
		return false
	}
	return f.Type == "" || u.Type == f.Type
}

// Match is one interpretation of a unit phrase: a unit and, optionally, the prefix applied to it.
type Match struct {
	Unit   *UnitDefinition
	Prefix *MetricPrefix
}

// Registry is an immutable catalog of units and prefixes.
type Registry struct {
	units        []UnitDefinition
	lowerAliases [][]string
	prefixes     []MetricPrefix
	pattern      prefixPattern
}

// NewRegistry validates and copies the given tables. Registration order is significant: it is
// the order in which lookups return candidates.
func NewRegistry(defs []UnitDefinition, prefixes []MetricPrefix) (*Registry, error) {
	r := &Registry{
		units:        make([]UnitDefinition, len(defs)),
		lowerAliases: make([][]string, len(defs)),
		prefixes:     make([]MetricPrefix, len(prefixes)),
	}

	for i, d := range defs {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		d.Aliases = append([]string(nil), d.Aliases...)
		r.units[i] = d

		lower := make([]string, len(d.Aliases))
		for j, a := range d.Aliases {
			lower[j] = strings.ToLower(a)
		}
		r.lowerAliases[i] = lower
	}

	for i, p := range prefixes {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		p.Aliases = append([]string(nil), p.Aliases...)
		r.prefixes[i] = p
	}
	r.pattern = newPrefixPattern(r.prefixes)

	return r, nil
}

// Units returns every unit in registration order.
func (r *Registry) Units() []*UnitDefinition {
	out := make([]*UnitDefinition, len(r.units))
	for i := range r.units {
		out[i] = &r.units[i]
	}
	return out
}

// ListUnits returns the units kept by filter in registration order.
func (r *Registry) ListUnits(filter Filter) []*UnitDefinition {
	var out []*UnitDefinition
	for i := range r.units {
		if filter.keep(&r.units[i]) {
			out = append(out, &r.units[i])
		}
	}
	return out
}

// Prefixes returns every prefix in table order.
func (r *Registry) Prefixes() []*MetricPrefix {
	out := make([]*MetricPrefix, len(r.prefixes))
	for i := range r.prefixes {
		out[i] = &r.prefixes[i]
	}
	return out
}

// Families returns the unit families in order of first registration.
func (r *Registry) Families() []string {
	seen := make(map[string]bool)
	var families []string
	for i := range r.units {
		if t := r.units[i].Type; !seen[t] {
			seen[t] = true
			families = append(families, t)
		}
	}
	return families
}

// FindUnits returns every unit with an alias equal to text. Exact, case-sensitive matches are
// tried first; only when there are none is the lowercased text compared against lowercased
// aliases. This keeps "b" (bit) apart from "B" (byte) while tolerating "MeTeR".
func (r *Registry) FindUnits(text string, filter Filter) []*UnitDefinition {
	var found []*UnitDefinition
	for i := range r.units {
		u := &r.units[i]
		if filter.keep(u) && u.HasAlias(text) {
			found = append(found, u)
		}
	}
	if len(found) > 0 {
		return found
	}

	lower := strings.ToLower(text)
	for i := range r.units {
		u := &r.units[i]
		if !filter.keep(u) {
			continue
		}
		for _, a := range r.lowerAliases[i] {
			if a == lower {
				found = append(found, u)
				break
			}
		}
	}
	return found
}

// FindMetricPrefix looks up a prefix by alias, case-sensitively first ("m" is Milli, "M" is
// Mega) and case-insensitively otherwise.
func (r *Registry) FindMetricPrefix(text string) (*MetricPrefix, bool) {
	for i := range r.prefixes {
		for _, a := range r.prefixes[i].Aliases {
			if a == text {
				return &r.prefixes[i], true
			}
		}
	}
	for i := range r.prefixes {
		for _, a := range r.prefixes[i].Aliases {
			if strings.EqualFold(a, text) {
				return &r.prefixes[i], true
			}
		}
	}
	return nil, false
}

// Resolve interprets a unit phrase. Plain alias lookup always comes first, so aliases that
// happen to start with a prefix letter ("ft", "gm") are never split. Prefix resolution only
// runs when the plain lookup finds nothing.
func (r *Registry) Resolve(text string) ([]Match, error) {
	if plain := r.FindUnits(text, Filter{}); len(plain) > 0 {
		return plainMatches(plain), nil
	}
	return r.ResolvePrefixed(text)
}

// ResolvePrefixed interprets text as a magnitude prefix followed by a metric unit. Phrases
// starting with "square " or "cubic " carry the prefix after the keyword ("square kilometers")
// and are restricted to the area or volume family.
func (r *Registry) ResolvePrefixed(text string) ([]Match, error) {
	for _, c := range compoundKeywords {
		if len(text) < len(c.keyword) || !strings.EqualFold(text[:len(c.keyword)], c.keyword) {
			continue
		}
		return r.resolveWithPrefix(text[len(c.keyword):], c.keyword, MetricOnly(c.family))
	}
	return r.resolveWithPrefix(text, "", MetricOnly(""))
}

var compoundKeywords = []struct {
	keyword string
	family  string
}{
	{"square ", Area},
	{"cubic ", Volume},
}

func (r *Registry) resolveWithPrefix(text, keyword string, filter Filter) ([]Match, error) {
	prefixText, rest, ok := r.pattern.match(text)
	if !ok {
		return nil, nil
	}

	prefix, ok := r.FindMetricPrefix(prefixText)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPrefixTableMismatch, prefixText)
	}

	found := r.FindUnits(keyword+rest, filter)
	matches := make([]Match, len(found))
	for i, u := range found {
		matches[i] = Match{Unit: u, Prefix: prefix}
	}
	return matches, nil
}

func plainMatches(units []*UnitDefinition) []Match {
	matches := make([]Match, len(units))
	for i, u := range units {
		matches[i] = Match{Unit: u}
	}
	return matches
}

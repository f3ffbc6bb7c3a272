package units

import "fmt"

// AliasConflict is an alias, plain or prefixed, naming more than one unit of the same family.
type AliasConflict struct {
	Type  string   `json:"type"`
	Alias string   `json:"alias"`
	Units []string `json:"units"`
}

func (c AliasConflict) String() string {
	return fmt.Sprintf("alias %q maps to multiple %s units: %v", c.Alias, c.Type, c.Units)
}

// AliasOverlap is an alias shared by units of two different families. Overlaps are legal ("f"
// is both °F and Foot) and are settled by disambiguation.
type AliasOverlap struct {
	Types [2]string `json:"types"`
	Alias string    `json:"alias"`
	Units [2]string `json:"units"`
}

type aliasOwner struct {
	name   string
	family string
}

// aliasIndex maps every plain and prefixed alias to the units it names, keeping first-seen
// order of aliases for stable reports.
type aliasIndex struct {
	order  []string
	owners map[string][]aliasOwner
}

func (idx *aliasIndex) add(alias string, owner aliasOwner) {
	if _, ok := idx.owners[alias]; !ok {
		idx.order = append(idx.order, alias)
	}
	idx.owners[alias] = append(idx.owners[alias], owner)
}

func (r *Registry) aliasIndex(family string) *aliasIndex {
	idx := &aliasIndex{owners: make(map[string][]aliasOwner)}
	for i := range r.units {
		u := &r.units[i]
		if family != "" && u.Type != family {
			continue
		}
		for _, a := range u.Aliases {
			idx.add(a, aliasOwner{name: u.Name("", false), family: u.Type})
			if !u.Metric {
				continue
			}
			for j := range r.prefixes {
				p := &r.prefixes[j]
				for _, pa := range p.Aliases {
					idx.add(pa+a, aliasOwner{name: u.Name(p.DisplayName, false), family: u.Type})
				}
			}
		}
	}
	return idx
}

// Conflicts reports aliases that name more than one unit within a family, counting every
// prefixed form of metric units. A healthy catalog has none.
func (r *Registry) Conflicts() []AliasConflict {
	var conflicts []AliasConflict
	for _, family := range r.Families() {
		idx := r.aliasIndex(family)
		for _, alias := range idx.order {
			owners := idx.owners[alias]
			if len(owners) < 2 {
				continue
			}
			names := make([]string, len(owners))
			for i, o := range owners {
				names[i] = o.name
			}
			conflicts = append(conflicts, AliasConflict{Type: family, Alias: alias, Units: names})
		}
	}
	return conflicts
}

// Overlaps reports aliases shared across families.
func (r *Registry) Overlaps() []AliasOverlap {
	idx := r.aliasIndex("")
	var overlaps []AliasOverlap
	for _, alias := range idx.order {
		owners := idx.owners[alias]
		for i := 0; i < len(owners); i++ {
			for j := i + 1; j < len(owners); j++ {
				if owners[i].family == owners[j].family {
					continue
				}
				overlaps = append(overlaps, AliasOverlap{
					Types: [2]string{owners[i].family, owners[j].family},
					Alias: alias,
					Units: [2]string{owners[i].name, owners[j].name},
				})
			}
		}
	}
	return overlaps
}

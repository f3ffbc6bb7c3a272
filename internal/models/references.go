package models

// ReferencesModel carries the catalog entries an API entity points at, so clients can render
// names and aliases without a second request.
type ReferencesModel struct {
	Units    []Unit   `json:"units"`
	Prefixes []Prefix `json:"prefixes"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Units:    []Unit{},
		Prefixes: []Prefix{},
	}
}

// AddUnit appends u unless a unit with the same id is already referenced.
func (r *ReferencesModel) AddUnit(u Unit) {
	for _, existing := range r.Units {
		if existing.ID == u.ID {
			return
		}
	}
	r.Units = append(r.Units, u)
}

// AddPrefix appends p unless it is already referenced.
func (r *ReferencesModel) AddPrefix(p Prefix) {
	for _, existing := range r.Prefixes {
		if existing.Name == p.Name {
			return
		}
	}
	r.Prefixes = append(r.Prefixes, p)
}

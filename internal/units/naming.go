package units

import "strings"

// NamingKind selects how a unit's display name is produced.
type NamingKind string

const (
	// NamingSuffixed pluralizes by appending "s" to the singular name.
	NamingSuffixed NamingKind = "suffixed"
	// NamingIrregular carries an explicit plural (Foot/Feet, Millennium/Millennia).
	NamingIrregular NamingKind = "irregular"
	// NamingSymbol is a fixed symbol such as "°C" or "PSI". Prefixes and plurals never change it.
	NamingSymbol NamingKind = "symbol"
	// NamingCompound is a "Square"/"Cubic" keyword in front of an inner name. Prefixes are
	// inserted after the keyword.
	NamingCompound NamingKind = "compound"
)

// Naming is the data-only naming strategy of a unit.
type Naming struct {
	Kind     NamingKind `yaml:"kind" json:"kind"`
	Singular string     `yaml:"singular" json:"singular"`
	Plural   string     `yaml:"plural,omitempty" json:"plural,omitempty"`
	Keyword  string     `yaml:"keyword,omitempty" json:"keyword,omitempty"`
}

func suffixed(singular string) Naming {
	return Naming{Kind: NamingSuffixed, Singular: singular}
}

func irregular(singular, plural string) Naming {
	return Naming{Kind: NamingIrregular, Singular: singular, Plural: plural}
}

func symbol(s string) Naming {
	return Naming{Kind: NamingSymbol, Singular: s}
}

// compound builds a "Square"/"Cubic" name. An empty plural means the inner name takes an "s".
func compound(keyword, singular, plural string) Naming {
	if plural == "" {
		plural = singular + "s"
	}
	return Naming{Kind: NamingCompound, Keyword: keyword, Singular: singular, Plural: plural}
}

func (n Naming) word(plural bool) string {
	if !plural {
		return n.Singular
	}
	switch n.Kind {
	case NamingSuffixed:
		return n.Singular + "s"
	case NamingSymbol:
		return n.Singular
	default:
		if n.Plural == "" {
			return n.Singular
		}
		return n.Plural
	}
}

// Name renders the display name. prefix is a prefix display name such as "Kilo", or "".
func (n Naming) Name(prefix string, plural bool) string {
	w := n.word(plural)
	switch n.Kind {
	case NamingSymbol:
		return w
	case NamingCompound:
		if prefix == "" {
			return n.Keyword + " " + w
		}
		return n.Keyword + " " + prefix + strings.ToLower(w)
	default:
		if prefix == "" {
			return w
		}
		return prefix + strings.ToLower(w)
	}
}

func (n Naming) validate() error {
	switch n.Kind {
	case NamingSuffixed, NamingIrregular, NamingSymbol:
	case NamingCompound:
		if n.Keyword == "" {
			return errMissingKeyword
		}
	default:
		return errUnknownNaming
	}
	if n.Singular == "" {
		return errEmptyName
	}
	return nil
}

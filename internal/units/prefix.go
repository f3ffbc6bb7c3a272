package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrPrefixTableMismatch means the prefix pattern matched an alias that the prefix table cannot
// resolve. It signals a broken catalog, never bad user input.
var ErrPrefixTableMismatch = errors.New("prefix pattern and prefix table out of sync")

// MetricPrefix is a magnitude prefix such as Kilo (1e3) or Kibi (1024).
type MetricPrefix struct {
	DisplayName string   `yaml:"display_name" json:"displayName"`
	Aliases     []string `yaml:"aliases" json:"aliases"`
	Value       float64  `yaml:"value" json:"value"`
}

func (p *MetricPrefix) validate() error {
	if p.DisplayName == "" {
		return fmt.Errorf("prefix: %w", errEmptyName)
	}
	if len(p.Aliases) == 0 {
		return fmt.Errorf("prefix %q: no aliases", p.DisplayName)
	}
	if p.Value == 0 {
		return fmt.Errorf("prefix %q: zero value", p.DisplayName)
	}
	return nil
}

// prefixPattern matches a leading prefix alias followed by at least one non-space rune.
//
// Invariant: aliases are ordered longest first (by rune count), ties keeping table order, so
// "pebi" is tried before "p" and "da" before "d". The first alias that fits wins.
type prefixPattern struct {
	aliases []string
}

func newPrefixPattern(prefixes []MetricPrefix) prefixPattern {
	var aliases []string
	for _, p := range prefixes {
		aliases = append(aliases, p.Aliases...)
	}
	sort.SliceStable(aliases, func(i, j int) bool {
		return utf8.RuneCountInString(aliases[i]) > utf8.RuneCountInString(aliases[j])
	})
	return prefixPattern{aliases: aliases}
}

// match splits text into the prefix as written and the remaining unit text.
func (pp prefixPattern) match(text string) (prefix, rest string, ok bool) {
	for _, alias := range pp.aliases {
		head, tail, fits := splitRunes(text, utf8.RuneCountInString(alias))
		if !fits || !strings.EqualFold(head, alias) {
			continue
		}
		if tail == "" || strings.IndexFunc(tail, unicode.IsSpace) >= 0 {
			continue
		}
		return head, tail, true
	}
	return "", "", false
}

func splitRunes(s string, n int) (head, tail string, ok bool) {
	i := 0
	for n > 0 {
		if i >= len(s) {
			return "", "", false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return s[:i], s[i:], true
}

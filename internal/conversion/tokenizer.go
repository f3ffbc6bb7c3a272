package conversion

import (
	"regexp"
	"strings"
)

// ParsedQuery is the tokenized form of a conversion query.
type ParsedQuery struct {
	Value          string
	InputUnitText  string
	OutputUnitText string
}

// queryPattern captures a signed decimal numeral, the input unit phrase and the output unit
// phrase. The separator needs whitespace on both sides so "in" inside "inch" is never taken
// as one. The lazy input phrase lets multi-word units such as "nautical mile" through.
var queryPattern = regexp.MustCompile(
	`(?i)^([+-]?(?:\d+\.?\d*|\.\d+))\s*(\S.*?)\s+(?:to|in|into|as|>|=|->|=>|:)\s+(\S.*)$`)

// Tokenize splits a query such as "5 miles in km" into its value and unit phrases.
func Tokenize(query string) (ParsedQuery, error) {
	m := queryPattern.FindStringSubmatch(strings.TrimSpace(query))
	if m == nil {
		return ParsedQuery{}, ErrTokenize
	}

	pq := ParsedQuery{
		Value:          m[1],
		InputUnitText:  strings.TrimSpace(m[2]),
		OutputUnitText: strings.TrimSpace(m[3]),
	}
	if pq.InputUnitText == "" || pq.OutputUnitText == "" {
		return ParsedQuery{}, ErrTokenize
	}
	return pq, nil
}

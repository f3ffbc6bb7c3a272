package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxQueryLength   = 200
	MaxCommentLength = 1000
	MaxAliasLength   = 50
)

// Compiled regular expressions for validation
var (
	// Injection markers. ">" alone is a conversion separator and stays legal.
	dangerousPattern = regexp.MustCompile(`<|--|/\*|\*/|;`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateQuery validates a conversion query such as "5 miles in km".
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("query cannot be empty")
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) || hasControl(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateComment validates the free-text comment attached to a problem report.
func ValidateComment(comment string) error {
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return errors.New("comment too long (max 1000 characters)")
	}
	return nil
}

// ValidateAlias validates a unit or prefix alias taken from the URL path.
func ValidateAlias(alias string) error {
	if alias == "" {
		return errors.New("alias cannot be empty")
	}

	if utf8.RuneCountInString(alias) > MaxAliasLength {
		return errors.New("alias too long (max 50 characters)")
	}

	if dangerousPattern.MatchString(alias) || hasControl(alias) {
		return errors.New("alias contains invalid characters")
	}

	return nil
}

// ValidateFamily checks that family is one of the known unit families. Empty is allowed and
// means every family.
func ValidateFamily(family string, known []string) error {
	if family == "" {
		return nil
	}
	for _, k := range known {
		if k == family {
			return nil
		}
	}
	return errors.New("unknown unit type")
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeQuery validates and sanitizes a conversion query
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		errMsg  string
	}{
		{name: "simple query", query: "5 miles in km"},
		{name: "arrow separator", query: "-10f -> m"},
		{name: "fat arrow separator", query: "1 nautical mile => feet"},
		{name: "greater than separator", query: "7 in > cm"},
		{name: "unicode units", query: "3 μm to m²"},
		{name: "query that will not convert is still valid", query: "hello"},
		{
			name:    "empty query",
			query:   "   ",
			wantErr: true,
			errMsg:  "query cannot be empty",
		},
		{
			name:    "query too long",
			query:   "1 " + strings.Repeat("m", 200) + " to ft",
			wantErr: true,
			errMsg:  "query too long (max 200 characters)",
		},
		{
			name:    "script tag",
			query:   "1 m to <script>",
			wantErr: true,
			errMsg:  "query contains invalid characters",
		},
		{
			name:    "SQL comment",
			query:   "1 m to ft'; DROP TABLE problem_reports; --",
			wantErr: true,
			errMsg:  "query contains invalid characters",
		},
		{
			name:    "control character",
			query:   "1 m to\x00ft",
			wantErr: true,
			errMsg:  "query contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err, "ValidateQuery should return error for invalid query")
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err, "ValidateQuery should not return error for valid query")
			}
		})
	}

	t.Run("length counts characters, not bytes", func(t *testing.T) {
		assert.NoError(t, ValidateQuery(strings.Repeat("μ", 150)))
	})
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, ValidateComment(""))
	assert.NoError(t, ValidateComment(strings.Repeat("é", 1000)))
	assert.EqualError(t, ValidateComment(strings.Repeat("a", 1001)), "comment too long (max 1000 characters)")
}

func TestValidateAlias(t *testing.T) {
	tests := []struct {
		name    string
		alias   string
		wantErr bool
	}{
		{name: "short alias", alias: "km"},
		{name: "multi word alias", alias: "nautical mile"},
		{name: "symbol alias", alias: "°C"},
		{name: "empty", alias: "", wantErr: true},
		{name: "too long", alias: strings.Repeat("a", 51), wantErr: true},
		{name: "html", alias: "<b>m</b>", wantErr: true},
		{name: "newline", alias: "m\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlias(tt.alias)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFamily(t *testing.T) {
	known := []string{"length", "mass"}

	assert.NoError(t, ValidateFamily("", known))
	assert.NoError(t, ValidateFamily("mass", known))
	assert.EqualError(t, ValidateFamily("Mass", known), "unknown unit type")
	assert.EqualError(t, ValidateFamily("luminosity", known), "unknown unit type")
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal input unchanged",
			input:    "10f to c",
			expected: "10f to c",
		},
		{
			name:     "script tags removed",
			input:    "<script>alert('xss')</script>1 m to ft",
			expected: "alert('xss')1 m to ft",
		},
		{
			name:     "separator survives",
			input:    " 7 in > cm ",
			expected: "7 in > cm",
		},
		{
			name:     "multiple tags removed",
			input:    "<p><strong>bold</strong> text</p>",
			expected: "bold text",
		},
		{
			name:     "only tags",
			input:    "<script></script><div></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeInput(tt.input), "SanitizeInput should return expected result")
		})
	}
}

func TestValidateAndSanitizeQuery(t *testing.T) {
	q, err := ValidateAndSanitizeQuery("  60 GB to Mebibytes ")
	assert.NoError(t, err)
	assert.Equal(t, "60 GB to Mebibytes", q)

	_, err = ValidateAndSanitizeQuery("")
	assert.Error(t, err)
}

package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"easyconvert.app/internal/appconf"
)

func TestIsInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key", "other"},
		},
	}

	tests := []struct {
		name    string
		key     string
		invalid bool
	}{
		{"blank key", "", true},
		{"known key", "key", false},
		{"second key", "other", false},
		{"unknown key", "nope", true},
		{"prefix of a key", "ke", true},
		{"case differs", "KEY", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, app.IsInvalidAPIKey(tt.key))
		})
	}
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{Config: appconf.Config{ApiKeys: []string{"TEST"}}}

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/problem-reports.json?key=TEST", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/api/problem-reports.json", nil)))
}

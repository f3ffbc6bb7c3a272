package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/convert.json?query="+url.QueryEscape("1 km to m"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry := entryMap(t, model)
	assert.Equal(t, "1 km to m", entry["query"])
	assert.Equal(t, "1", entry["inputValue"])
	assert.Equal(t, "Kilometer", entry["inputUnit"])
	assert.Equal(t, "length_meter", entry["inputUnitId"])
	assert.Equal(t, "Kilo", entry["inputPrefix"])
	assert.Equal(t, "1000", entry["outputValue"])
	assert.Equal(t, "Meters", entry["outputUnit"])
	assert.NotContains(t, entry, "outputPrefix")
	assert.Equal(t, "length", entry["type"])
	assert.Equal(t, 1000.0, entry["value"])

	refs, ok := dataMap(t, model)["references"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, refs["units"], 1, "both sides resolve to the meter")
	assert.Len(t, refs["prefixes"], 1)
}

func TestConvertHandlerSeparators(t *testing.T) {
	api := createTestApi(t)

	queries := map[string]string{
		"10f to c":              "-12.222",
		"7 in > cm":             "17.78",
		"60 GB => Mebibytes":    "57220.459",
		"1 nautical mile : m":   "1852",
		"100 feet -> gigameter": "3.05e-8",
	}

	for query, want := range queries {
		t.Run(query, func(t *testing.T) {
			resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/convert.json?query="+url.QueryEscape(query))
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, want, entryMap(t, model)["outputValue"])
		})
	}
}

func TestConvertHandlerUnparsedQuery(t *testing.T) {
	tests := []struct {
		query  string
		reason string
	}{
		{query: "100 feet in", reason: "tokenize"},
		{query: "1 furlong to m", reason: "unit_not_found"},
		{query: "10 Fahrenheit to Feet", reason: "family_mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, "/api/convert.json?query="+url.QueryEscape(tt.query))

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, http.StatusUnprocessableEntity, model.Code)
			assert.Equal(t, "could not parse query", model.Text)

			data := dataMap(t, model)
			assert.Equal(t, tt.query, data["query"])
			assert.Equal(t, tt.reason, data["reason"])
			assert.Equal(t, "/api/report-problem.json?query="+url.QueryEscape(tt.query), data["reportUrl"])
		})
	}
}

func TestConvertHandlerInvalidQuery(t *testing.T) {
	for _, query := range []string{"", "1 m to <script>", "1 m to ft; --"} {
		t.Run(query, func(t *testing.T) {
			_, resp, _ := serveAndRetrieveEndpoint(t, "/api/convert.json?query="+url.QueryEscape(query))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easyconvert.app/internal/app"
	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/units"
)

func TestReportProblemHandler(t *testing.T) {
	api := createTestApi(t)

	endpoint := "/api/report-problem.json?query=" + url.QueryEscape("10 Fahrenheit to Feet") +
		"&comment=" + url.QueryEscape("I meant feet of snow")
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryMap(t, model)
	assert.Equal(t, "10 Fahrenheit to Feet", entry["query"])
	assert.Equal(t, "I meant feet of snow", entry["comment"])
	assert.Equal(t, "family_mismatch", entry["failureKind"])
	assert.NotEmpty(t, entry["id"])

	resp, model = serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := listOf(t, model)
	require.Len(t, list, 1)
	assert.Equal(t, entry["id"], list[0].(map[string]interface{})["id"])
}

func TestReportProblemHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "missing query", endpoint: "/api/report-problem.json"},
		{name: "dangerous query", endpoint: "/api/report-problem.json?query=" + url.QueryEscape("1 m; DROP")},
		{name: "long comment", endpoint: "/api/report-problem.json?query=x&comment=" + url.QueryEscape(string(bytes.Repeat([]byte("a"), 1001)))},
		{name: "query that converts", endpoint: "/api/report-problem.json?query=" + url.QueryEscape("1 km to m")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := serveApiAndRetrieveEndpoint(t, api, tt.endpoint)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	t.Run("query that converts names the field", func(t *testing.T) {
		mux := http.NewServeMux()
		api.SetRoutes(mux)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report-problem.json?query="+url.QueryEscape("5 miles in km"), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"fieldErrors":{"query":["query converts successfully"]}}`, rec.Body.String())
	})

	counts, err := api.Reports.CountProblemReports(t.Context())
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestReportProblemHandlerFormPost(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	form := url.Values{"query": {"1 ft to gm"}, "comment": {"gigameters"}}
	req := httptest.NewRequest(http.MethodPost, "/api/report-problem.json", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"failureKind":"family_mismatch"`)

	counts, err := api.Reports.CountProblemReports(t.Context())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"family_mismatch": 1}, counts)
}

func TestReportProblemHandlerWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	application := app.New(testConfig(), logger, units.NewDefaultRegistry(), nil)
	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	handler := NewRequestLoggingMiddleware(logger)(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/report-problem.json?query=furlongs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"problem_report_received"`)
	assert.Contains(t, buf.String(), `"failure_kind":"tokenize"`)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listOf(t, model))
}

func TestProblemReportsHandler(t *testing.T) {
	api := createTestApi(t)
	ctx := t.Context()

	for _, q := range []string{"1 smoot to m", "2 cubits to ft", "3 leagues to km"} {
		_, err := api.Reports.InsertProblemReport(ctx, q, "", "unit_not_found")
		require.NoError(t, err)
	}

	t.Run("requires api key", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "permission denied", model.Text)
		assert.Equal(t, 1, model.Version)
	})

	t.Run("rejects unknown api key", func(t *testing.T) {
		resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json?key=nope")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("limit", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json?key=TEST&limit=2")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, listOf(t, model), 2)
		assert.Equal(t, true, dataMap(t, model)["limitExceeded"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/problem-reports.json?key=TEST&limit=lots")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

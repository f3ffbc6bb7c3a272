package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"easyconvert.app/internal/app"
	"easyconvert.app/internal/appconf"
	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/models"
	"easyconvert.app/internal/units"
	"easyconvert.app/reportdb"
)

func testConfig() appconf.Config {
	cfg := appconf.Defaults()
	cfg.Env = appconf.Test
	cfg.ApiKeys = []string{"TEST"}
	cfg.ReportDBPath = ":memory:"
	return cfg
}

// createTestApiWithConfig creates a RestAPI backed by the built-in catalog and an in-memory
// report store.
func createTestApiWithConfig(t *testing.T, cfg appconf.Config) *RestAPI {
	t.Helper()

	reports, err := reportdb.NewClient(reportdb.NewConfig(cfg.ReportDBPath, cfg.Env), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reports.Close() })

	application := app.New(cfg, logging.Discard(), units.NewDefaultRegistry(), reports)
	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)
	return api
}

func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, testConfig())
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// dataMap returns the envelope's data object.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object, got %T", model.Data)
	return data
}

func entryMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	entry, ok := dataMap(t, model)["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	return entry
}

func listOf(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	list, ok := dataMap(t, model)["list"].([]interface{})
	require.True(t, ok, "list should be an array")
	return list
}

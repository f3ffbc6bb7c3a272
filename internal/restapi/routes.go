package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) limited(h http.Handler) http.Handler {
	if api.rateLimiter == nil {
		return h
	}
	return api.rateLimiter.Handler(h)
}

// SetRoutes registers the JSON API. Conversion and catalog routes are public; stored problem
// reports require an API key.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/convert.json", api.limited(http.HandlerFunc(api.convertHandler)))
	mux.Handle("GET /api/units.json", api.limited(http.HandlerFunc(api.unitsHandler)))
	mux.Handle("GET /api/units/{alias}", api.limited(http.HandlerFunc(api.unitHandler)))
	mux.Handle("GET /api/prefixes.json", api.limited(http.HandlerFunc(api.prefixesHandler)))
	mux.Handle("GET /api/prefixes/{alias}", api.limited(http.HandlerFunc(api.prefixHandler)))
	mux.Handle("GET /api/report-problem.json", api.limited(http.HandlerFunc(api.reportProblemHandler)))
	mux.Handle("POST /api/report-problem.json", api.limited(http.HandlerFunc(api.reportProblemHandler)))
	mux.Handle("GET /api/problem-reports.json", api.limited(validateAPIKey(api, api.problemReportsHandler)))
}

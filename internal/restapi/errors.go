package restapi

import (
	"encoding/json"
	"net/http"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/models"
)

type statusResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) writeStatus(w http.ResponseWriter, code int, text string, version int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(statusResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     version,
	})
	if err != nil {
		logging.LogError(api.Logger, "failed to encode status response", err)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response. Errors outside the data envelope
// carry version 1.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeStatus(w, http.StatusUnauthorized, "permission denied", 1)
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)
	api.writeStatus(w, http.StatusInternalServerError, "internal server error", 1)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err)
	}
}

// unparsedQueryData is the data of a 422 response: the query, why it failed and where to
// report it.
type unparsedQueryData struct {
	Query     string `json:"query"`
	Reason    string `json:"reason"`
	ReportURL string `json:"reportUrl"`
}

// unparsedQueryResponse sends a 422 for a query that yielded no conversion.
func (api *RestAPI) unparsedQueryResponse(w http.ResponseWriter, r *http.Request, query string, err error) {
	response := models.NewResponse(http.StatusUnprocessableEntity, unparsedQueryData{
		Query:     query,
		Reason:    conversion.FailureKind(err),
		ReportURL: models.ReportProblemURL(query),
	}, "could not parse query")
	api.sendResponseWithStatus(w, r, http.StatusUnprocessableEntity, response)
}

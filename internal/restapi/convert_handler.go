package restapi

import (
	"errors"
	"net/http"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/models"
	"easyconvert.app/internal/utils"
)

func (api *RestAPI) convertHandler(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("query"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"query": {err.Error()}})
		return
	}

	result, err := api.Engine.ParseConversion(query)
	if errors.Is(err, conversion.ErrNoResult) {
		api.unparsedQueryResponse(w, r, query, err)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry, refs := models.NewConversionData(query, result)
	api.sendResponse(w, r, models.NewEntryResponse(entry, refs))
}

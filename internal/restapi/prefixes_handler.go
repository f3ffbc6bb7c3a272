package restapi

import (
	"net/http"

	"easyconvert.app/internal/models"
	"easyconvert.app/internal/utils"
)

func (api *RestAPI) prefixesHandler(w http.ResponseWriter, r *http.Request) {
	list := models.NewPrefixes(api.Registry.Prefixes())
	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences(), false))
}

func (api *RestAPI) prefixHandler(w http.ResponseWriter, r *http.Request) {
	alias := utils.ExtractParam(r, "alias")
	if err := utils.ValidateAlias(alias); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"alias": {err.Error()}})
		return
	}

	prefix, ok := api.Registry.FindMetricPrefix(alias)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(models.NewPrefix(prefix), models.NewEmptyReferences()))
}

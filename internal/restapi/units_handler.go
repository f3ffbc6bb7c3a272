package restapi

import (
	"net/http"
	"net/url"

	"easyconvert.app/internal/models"
	"easyconvert.app/internal/units"
	"easyconvert.app/internal/utils"
)

// parseUnitFilter reads the optional type and metric query parameters.
func (api *RestAPI) parseUnitFilter(params url.Values) (units.Filter, map[string][]string) {
	fieldErrors := make(map[string][]string)

	family := params.Get("type")
	if err := utils.ValidateFamily(family, api.Registry.Families()); err != nil {
		fieldErrors["type"] = append(fieldErrors["type"], err.Error())
	}

	metric, fieldErrors := utils.ParseBoolParam(params, "metric", fieldErrors)
	return units.Filter{Metric: metric, Type: family}, fieldErrors
}

func (api *RestAPI) unitsHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := api.parseUnitFilter(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	list := models.NewUnits(api.Registry.ListUnits(filter))
	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences(), false))
}

// unitHandler lists the units an alias names. Several families may share an alias ("f").
func (api *RestAPI) unitHandler(w http.ResponseWriter, r *http.Request) {
	alias := utils.ExtractParam(r, "alias")
	if err := utils.ValidateAlias(alias); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"alias": {err.Error()}})
		return
	}

	filter, fieldErrors := api.parseUnitFilter(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	found := api.Registry.FindUnits(alias, filter)
	if len(found) == 0 {
		api.sendNotFound(w, r)
		return
	}
	api.sendResponse(w, r, models.NewListResponse(models.NewUnits(found), models.NewEmptyReferences(), false))
}

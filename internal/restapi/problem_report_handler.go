package restapi

import (
	"log/slog"
	"net/http"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/models"
	"easyconvert.app/internal/utils"
	"easyconvert.app/reportdb"
)

// reportProblemHandler records a query the user could not convert. The failure kind is
// recomputed here rather than trusted from the client, and queries that convert are rejected.
func (api *RestAPI) reportProblemHandler(w http.ResponseWriter, r *http.Request) {
	fieldErrors := make(map[string][]string)

	query, err := utils.ValidateAndSanitizeQuery(r.FormValue("query"))
	if err != nil {
		fieldErrors["query"] = append(fieldErrors["query"], err.Error())
	}
	comment := utils.SanitizeInput(r.FormValue("comment"))
	if err := utils.ValidateComment(comment); err != nil {
		fieldErrors["comment"] = append(fieldErrors["comment"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	_, convErr := api.Engine.ParseConversion(query)
	if convErr == nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {"query converts successfully"},
		})
		return
	}
	kind := conversion.FailureKind(convErr)

	logger := logging.FromContext(r.Context())
	if api.Reports == nil {
		logging.LogOperation(logger, "problem_report_received",
			slog.String("query", query),
			slog.String("failure_kind", kind),
			slog.String("component", "problem_reports"))
		api.sendResponse(w, r, models.NewOKResponse(nil))
		return
	}

	report, err := api.Reports.InsertProblemReport(r.Context(), query, comment, kind)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(models.NewProblemReport(report), models.NewEmptyReferences()))
}

func (api *RestAPI) problemReportsHandler(w http.ResponseWriter, r *http.Request) {
	limit, fieldErrors := utils.ParseIntParam(r.URL.Query(), "limit", reportdb.DefaultListLimit, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if api.Reports == nil {
		api.sendResponse(w, r, models.NewListResponse([]models.ProblemReport{}, models.NewEmptyReferences(), false))
		return
	}

	reports, more, err := api.Reports.ListProblemReports(r.Context(), limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewListResponse(models.NewProblemReports(reports), models.NewEmptyReferences(), more))
}

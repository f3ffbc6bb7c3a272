package webui

import (
	"errors"
	"net/http"

	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/models"
	"easyconvert.app/internal/utils"
)

// Shown while the query box is empty.
var tutorialExamples = []string{
	"10f to c",
	"5 miles in km",
	"60 GB to Mebibytes",
	"1atm to psi",
}

type indexPage struct {
	Query    string
	Examples []string
	Result   *conversion.ConversionResult
	Failed   bool
	Reason   string
	// ReportAction is where the could-not-parse card posts its report form.
	ReportAction string
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	page := indexPage{
		Query:    r.URL.Query().Get("query"),
		Examples: tutorialExamples,
	}

	if page.Query == "" {
		webUI.render(w, r, "index.html", page)
		return
	}

	query, err := utils.ValidateAndSanitizeQuery(page.Query)
	if err != nil {
		page.Failed = true
		page.Reason = err.Error()
		webUI.render(w, r, "index.html", page)
		return
	}
	page.Query = query

	result, err := webUI.Engine.ParseConversion(query)
	switch {
	case err == nil:
		page.Result = &result
	case errors.Is(err, conversion.ErrNoResult):
		page.Failed = true
		page.Reason = conversion.FailureKind(err)
		page.ReportAction = models.ReportProblemPath
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	webUI.render(w, r, "index.html", page)
}

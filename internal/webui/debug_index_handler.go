package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/julienschmidt/httprouter"
)

type debugData struct {
	Title string
	Pre   string
}

var debugDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	webUI.render(w, r, "debug_index.html", debugData{
		Title: title,
		Pre:   debugDumper.Sdump(data),
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := httprouter.ParamsFromContext(r.Context()).ByName("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "units":
		data = webUI.Registry.Units()
		title = "Catalog - Units"
	case "prefixes":
		data = webUI.Registry.Prefixes()
		title = "Catalog - Prefixes"
	case "families":
		data = webUI.Registry.Families()
		title = "Catalog - Families"
	case "conflicts":
		data = webUI.Registry.Conflicts()
		title = "Catalog - Alias Conflicts"
	case "overlaps":
		data = webUI.Registry.Overlaps()
		title = "Catalog - Cross-Family Overlaps"
	case "reports":
		title = "Problem Reports - Counts"
		if webUI.Reports == nil {
			data = map[string]string{"error": "No report store is configured."}
			break
		}
		counts, err := webUI.Reports.CountProblemReports(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		data = counts
	default:
		data = map[string]string{
			"error": "Please use one of the following: units, prefixes, families, conflicts, overlaps, reports.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, r, title, data)
}

package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Router returns the page routes.
func (webUI *WebUI) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", webUI.indexHandler)
	router.HandlerFunc(http.MethodGet, "/debug/:dataType", webUI.debugIndexHandler)
	return router
}

// SetWebUIRoutes mounts the pages on mux. API patterns registered on the same mux are more
// specific and take precedence.
func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.Handle("/", webUI.Router())
}

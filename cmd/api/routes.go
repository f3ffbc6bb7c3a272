package main

import (
	"net/http"

	"easyconvert.app/internal/app"
	"easyconvert.app/internal/restapi"
	"easyconvert.app/internal/webui"
)

// newHandler builds the full middleware chain around the API and the pages. The returned
// func releases the rate limiter.
func newHandler(application *app.Application) (http.Handler, func(), error) {
	api := restapi.NewRestAPI(application)

	pages, err := webui.New(application)
	if err != nil {
		api.Shutdown()
		return nil, nil, err
	}

	apiMux := http.NewServeMux()
	api.SetRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.WithSecurityHeaders(apiMux))
	pages.SetWebUIRoutes(mux)

	var handler http.Handler = mux
	handler = restapi.NewCompressionMiddleware(application.Config.Compression)(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	return handler, api.Shutdown, nil
}

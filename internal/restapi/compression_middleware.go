package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"easyconvert.app/internal/appconf"
)

// NewCompressionMiddleware gzips responses of at least config.MinSize bytes when the client
// accepts gzip.
func NewCompressionMiddleware(config appconf.CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	return func(next http.Handler) http.Handler {
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(appconf.Defaults().Compression)(next)
}

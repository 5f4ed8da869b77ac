package http

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

// assetMaxAge is the Cache-Control max-age of stylesheets, scripts and images.
const assetMaxAge = "max-age=86400"

// withCacheControl lets clients cache stylesheets, scripts and images for a
// day. Other assets are left without caching headers.
func withCacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isCacheableAsset(r.URL.Path) {
			w.Header().Set("Cache-Control", assetMaxAge)
		}
		next.ServeHTTP(w, r)
	})
}

func isCacheableAsset(p string) bool {
	contentType := mime.TypeByExtension(path.Ext(p))
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch {
	case mediaType == "text/css",
		mediaType == "text/javascript",
		mediaType == "application/javascript",
		strings.HasPrefix(mediaType, "image/"):
		return true
	default:
		return false
	}
}

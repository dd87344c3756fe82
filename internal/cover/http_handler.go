package cover

import (
	"net/http"
	"strings"
)

const cacheControl = "public, max-age=31536000, immutable"

type HTTPHandler struct {
	renderer Renderer
}

func NewHTTPHandler(renderer Renderer) *HTTPHandler {
	return &HTTPHandler{renderer: renderer}
}

// Get handles GET /api/book-cover
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	spec := ParseSpec(r.URL.Query())
	etag := spec.ETag()

	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.renderer.Render(spec))
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

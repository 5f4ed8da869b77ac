package http

import (
	"net/http"

	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// countParam is the path segment holding the number of words.
const countParam = "number"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withThrottle(), middleware.GetHead, withGZip)

	router.Get("/", h.redirectToDefault)

	router.Group(func(r chi.Router) {
		r.Get("/{"+countParam+"}/", h.name(models.FormatHTML))
		r.Get("/{"+countParam+"}/raw", h.name(models.FormatRaw))
		r.Get("/{"+countParam+"}/json", h.name(models.FormatJSON))
	})

	// everything else is looked up in the static assets
	router.With(withCacheControl).Get("/*", h.static.ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// withThrottle caps the number of requests served at once, like a fixed
// size worker pool. Requests above the cap wait in a bounded backlog.
func (h *Handler) withThrottle() func(next http.Handler) http.Handler {
	limit := h.cfg.ThreadPool
	if limit < 1 {
		limit = config.DefaultThreadPool
	}

	backlog := h.cfg.Backlog
	if backlog < 0 {
		backlog = 0
	}

	timeout := h.cfg.BacklogTimeout
	if timeout <= 0 {
		timeout = config.DefaultBacklogTimeout
	}

	return middleware.ThrottleBacklog(limit, backlog, timeout)
}

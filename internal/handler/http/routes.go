package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by the dev server itself. Everything else is a static file.
const (
	ReloadPath  = "/__devconfig/reload"
	VersionPath = "/__devconfig/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.GetHead)

	// the websocket connection must not pass through the compressor
	router.Get(ReloadPath, h.hub.ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "text/html", "text/css", "text/javascript", "application/javascript", "application/json"))

		r.Get("/", h.serveIndex)
		r.Get("/index.html", h.serveIndex)
		r.Get(VersionPath, h.getServerVersion)
		r.Get("/*", h.serveStatic)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	bundlesRoute = "/osgiManagement/bundles"
	versionRoute = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route(bundlesRoute, func(r chi.Router) {
		r.Get("/", h.listBundles)
		r.Get("/{id}", h.getBundle)
	})
	router.Get(versionRoute, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

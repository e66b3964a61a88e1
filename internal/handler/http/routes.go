package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	configPath      = "/api/admin/configuracion"
	configFieldPath = configPath + "/field"
	configResetPath = configPath + "/reset"
	versionPath     = "/api/version/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZipRequests)
	router.Use(middleware.Compress(gzipLevel, "application/json", "text/plain"))

	router.Get(versionPath, h.getServerVersion)

	router.Get(configPath, h.getConfig)
	router.Put(configPath, h.putConfig)
	router.Patch(configFieldPath, h.patchConfigField)
	router.Post(configResetPath, h.resetConfig)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

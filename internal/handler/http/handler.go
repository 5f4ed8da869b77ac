package http

import (
	"io/fs"
	"net/http"

	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/service"
	"github.com/MKhiriev/go-name-gen/web"
)

type Handler struct {
	services *service.Services

	// template is the page served by the HTML route; it holds
	// web.Placeholder where the name goes.
	template string
	static   http.Handler

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		template: web.Template,
		static:   newStaticHandler(web.StaticFiles),
		cfg:      cfg,
		logger:   logger,
	}
}

func newStaticHandler(files fs.FS) http.Handler {
	return http.FileServer(http.FS(files))
}

package handler

import (
	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/handler/http"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.NameService == nil {
		return nil, errNoNameService
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}

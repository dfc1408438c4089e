package handler

import (
	"github.com/MKhiriev/go-portfolio-panel/internal/config"
	"github.com/MKhiriev/go-portfolio-panel/internal/handler/http"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, buildInfo models.AppBuildInfo, cfg config.Panel, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, buildInfo, cfg, logger),
	}, nil
}

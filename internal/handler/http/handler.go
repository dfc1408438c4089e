package http

import (
	"time"

	"github.com/MKhiriev/go-portfolio-panel/internal/config"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	settings  config.Panel

	ids     utils.IDGenerator
	limiter *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, settings config.Panel, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:  services,
		buildInfo: buildInfo,
		settings:  settings,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
	if settings.RateLimit > 0 {
		h.limiter = newClientLimiter(settings.RateLimit, settings.RateBurst)
	}

	return h
}

// RateLimiter returns the /ui rate limiter so idle client buckets can be
// pruned, or nil when rate limiting is disabled.
func (h *Handler) RateLimiter() interface{ Prune(time.Duration) int } {
	if h.limiter == nil {
		return nil
	}
	return h.limiter
}

package service

import (
	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

// Services groups the panel services shared by the web and terminal front
// ends.
type Services struct {
	SubmissionService SubmissionService
	DecryptionService DecryptionService
	AppInfoService    AppInfoService

	// Tracker is exposed so the prune worker can drop idle sessions.
	Tracker *RequestTracker
}

func NewServices(optimizer adapter.OptimizerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	tracker := NewRequestTracker(utils.NewUUIDGenerator())

	return &Services{
		SubmissionService: NewSubmissionService(optimizer, tracker, logger),
		DecryptionService: NewDecryptionService(optimizer, logger),
		AppInfoService:    NewAppInfoService(buildInfo),
		Tracker:           tracker,
	}
}

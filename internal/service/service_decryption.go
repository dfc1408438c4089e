package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

type decryptionService struct {
	adapter adapter.OptimizerAdapter

	logger *logger.Logger
}

func NewDecryptionService(optimizer adapter.OptimizerAdapter, logger *logger.Logger) DecryptionService {
	return &decryptionService{adapter: optimizer, logger: logger}
}

func (s *decryptionService) Decrypt(ctx context.Context, jobID string) (models.DecryptionResult, error) {
	result, err := s.adapter.Decrypt(ctx, jobID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("job_id", jobID).
			Str("kind", errorKind(err)).
			Msg("decryption failed")
		return models.DecryptionResult{}, err
	}

	s.logger.Info().Str("job_id", jobID).Msg("decryption completed")
	return result, nil
}

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-portfolio-panel/internal/adapter"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

type submissionService struct {
	adapter adapter.OptimizerAdapter
	tracker *RequestTracker

	logger *logger.Logger
}

func NewSubmissionService(optimizer adapter.OptimizerAdapter, tracker *RequestTracker, logger *logger.Logger) SubmissionService {
	return &submissionService{
		adapter: optimizer,
		tracker: tracker,
		logger:  logger,
	}
}

func (s *submissionService) Submit(ctx context.Context, session string, req models.OptimizationRequest) (models.OptimizationResult, error) {
	reqCtx, token := s.tracker.Begin(ctx, session)
	defer s.tracker.Finish(session, token)

	log := s.logger.With().
		Str("session", session).
		Str("token", token).
		Str("tickers", req.Tickers).
		Logger()

	result, err := s.adapter.Optimize(reqCtx, req)
	if !s.tracker.Current(session, token) {
		log.Info().Msg("submission superseded, dropping outcome")
		return models.OptimizationResult{}, ErrSuperseded
	}
	if err != nil {
		log.Warn().Err(err).Str("kind", errorKind(err)).Msg("optimization failed")
		return models.OptimizationResult{}, err
	}

	log.Info().
		Str("job_id", result.JobID).
		Strs("selected", result.Selected).
		Msg("optimization completed")

	return result, nil
}

// errorKind names the adapter error class for logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, adapter.ErrServer):
		return "server"
	case errors.Is(err, adapter.ErrSchema):
		return "schema"
	case errors.Is(err, adapter.ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}

package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SubmissionService runs the submit flow: one optimization request per user
// action, scoped to a panel session.
type SubmissionService interface {
	// Submit forwards req to the backend. Beginning a submission cancels the
	// in-flight submission of the same session. When a newer submission began
	// before this one completed, Submit returns [ErrSuperseded] and the
	// caller must not render anything. Other errors are the adapter's
	// classified errors.
	Submit(ctx context.Context, session string, req models.OptimizationRequest) (models.OptimizationResult, error)
}

// DecryptionService runs the decrypt flow. Invocations are independent:
// never deduplicated, never cached.
type DecryptionService interface {
	// Decrypt fetches the decrypted plaintext of jobID.
	Decrypt(ctx context.Context, jobID string) (models.DecryptionResult, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	// GetAppVersion returns the build version, "N/A" when not injected.
	GetAppVersion(ctx context.Context) string
}

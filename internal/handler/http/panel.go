package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/MKhiriev/go-portfolio-panel/internal/service"
	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
	"github.com/MKhiriev/go-portfolio-panel/internal/view"
	"github.com/MKhiriev/go-portfolio-panel/models"
)

// supersededHeader marks a 204 answer to a submission that a newer one of
// the same session replaced.
const supersededHeader = "X-Panel-Superseded"

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Page(h.buildInfo).Render(r.Context(), w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering page")
	}
}

func (h *Handler) optimize(r *http.Request) ComponentResponse {
	log := logger.FromRequest(r)

	// session is always set by withSession on this route
	session, _ := utils.GetSessionIDFromContext(r.Context())

	req := models.OptimizationRequest{Tickers: r.FormValue("tickers")}
	result, err := h.services.SubmissionService.Submit(r.Context(), session, req)
	switch {
	case errors.Is(err, service.ErrSuperseded):
		log.Debug().Str("session", session).Msg("submission superseded")
		return ComponentResponse{Header: http.Header{supersededHeader: []string{"1"}}}
	case err != nil:
		return ComponentResponse{Component: view.SubmitError(err)}
	}

	return ComponentResponse{Component: view.OptimizationResult(result)}
}

func (h *Handler) decrypt(r *http.Request) ComponentResponse {
	jobID := r.URL.Query().Get("job_id")

	result, err := h.services.DecryptionService.Decrypt(r.Context(), jobID)
	if err != nil {
		return ComponentResponse{Component: view.Group(view.Decrypting(jobID), view.DecryptError(err))}
	}

	return ComponentResponse{Component: view.Group(view.Decrypting(jobID), view.Decrypted(result))}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio-panel/internal/app"
	"github.com/MKhiriev/go-portfolio-panel/internal/logger"
	"github.com/a-h/templ"
)

// ComponentResponse is what a fragment handler produces. A nil Component
// answers 204 with no body.
type ComponentResponse struct {
	Component templ.Component
	Header    http.Header
}

// ComponentHandler adapts a fragment handler to http.Handler. Fragments are
// always written with 200, error fragments included, so the panel script can
// place them into the page.
type ComponentHandler func(r *http.Request) ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(r)

	for k, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	if resp.Component == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if err := resp.Component.Render(r.Context(), w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering fragment")
		// the status line is already out; append a visible marker
		_, _ = w.Write([]byte(app.MsgInternalServerError))
	}
}

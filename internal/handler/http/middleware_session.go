package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio-panel/internal/utils"
)

const sessionCookieName = "panel_session"

// withSession attaches the panel session id to the request context, issuing
// a cookie on first contact. Submissions of the same session supersede each
// other.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = h.ids.Generate()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionID(r.Context(), sessionID)))
	})
}

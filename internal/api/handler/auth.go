package handler

import (
	"net/http"

	"github.com/gvvenom/likespanel/internal/api/response"
	"github.com/gvvenom/likespanel/internal/core"
)

// Auth serves the generic session endpoints shared by both account kinds.
type Auth struct {
	sessions *core.SessionService
}

func NewAuth(sessions *core.SessionService) *Auth {
	return &Auth{sessions: sessions}
}

// Me reports the identity behind the caller's VIP session cookie, or null
// when no valid session is present.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(core.CookieVip)
	if err != nil {
		response.WriteJSON(w, http.StatusOK, nil)
		return
	}

	claims, err := h.sessions.Validate(cookie.Value)
	if err != nil {
		response.WriteJSON(w, http.StatusOK, nil)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"id":       claims.Sub,
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// Logout clears the generic app session cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	core.ClearSessionCookie(w, core.CookieApp, core.SecureRequest(r))
	response.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

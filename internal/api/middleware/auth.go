package middleware

import (
	"context"
	"net/http"

	"github.com/gvvenom/likespanel/internal/api/response"
	"github.com/gvvenom/likespanel/internal/core"
	"github.com/gvvenom/likespanel/internal/model"
)

type contextKey string

const claimsKey contextKey = "claims"

// SessionAuth returns middleware that validates the signed session cookie of
// the given name, requires the given role, and injects the claims into the
// request context.
func SessionAuth(sessions *core.SessionService, cookieName, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, "missing session")
				return
			}

			claims, err := sessions.Validate(cookie.Value)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if claims.Role != role {
				response.WriteError(w, http.StatusUnauthorized, "invalid session")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VipAuth guards VIP-only routes via the vip_session cookie.
func VipAuth(sessions *core.SessionService) func(http.Handler) http.Handler {
	return SessionAuth(sessions, core.CookieVip, model.RoleVip)
}

// AdminAuth guards admin-only routes via the admin_session cookie.
func AdminAuth(sessions *core.SessionService) func(http.Handler) http.Handler {
	return SessionAuth(sessions, core.CookieAdmin, model.RoleAdmin)
}

// GetClaims extracts session claims from the request context.
func GetClaims(ctx context.Context) *model.SessionClaims {
	claims, _ := ctx.Value(claimsKey).(*model.SessionClaims)
	return claims
}

package router

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/academia/internal/pkg/jwt"
)

// Authorize returns a middleware that enforces the casbin policy
// (role, obj, act) for the authenticated admin. It is a no-op when no
// enforcer is configured.
func (r *Router) Authorize(obj, act string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.enforcer == nil {
				next.ServeHTTP(w, req)
				return
			}

			claims := jwt.GetAuth(req.Context())
			if claims == nil {
				writeJSON(w, errorResponse{Message: "Token not provided"}, http.StatusUnauthorized)
				return
			}

			ok, err := r.enforcer.Enforce(claims.Role, obj, act)
			if err != nil {
				slog.ErrorContext(req.Context(), "failed to enforce policy", "role", claims.Role, "obj", obj, "act", act, "error", err)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if !ok {
				writeJSON(w, errorResponse{Message: "You do not have permission to perform this action"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

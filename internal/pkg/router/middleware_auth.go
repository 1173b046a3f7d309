package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shandysiswandi/academia/internal/pkg/jwt"
)

// ErrAccountUnavailable is returned by an AccountGuard when the admin behind a
// valid token no longer exists or was deactivated.
var ErrAccountUnavailable = errors.New("router: account not available")

// AccountGuard returns the current role of the admin identified by a verified
// token, or ErrAccountUnavailable.
type AccountGuard func(ctx context.Context, adminID int64) (role string, err error)

var allowedRoles = map[string]struct{}{
	"admin":       {},
	"super_admin": {},
}

type authState struct {
	verifier        jwt.JWT
	guard           AccountGuard
	publicEndpoints map[string]map[string]struct{}
	queryToken      map[string]struct{}
}

func (s *authState) isPublic(method, path string) bool {
	if m, ok := s.publicEndpoints[method]; ok {
		_, skip := m[path]
		return skip
	}
	return false
}

func (s *authState) token(r *http.Request, route string) string {
	p := strings.Fields(r.Header.Get("Authorization"))
	if len(p) == 2 && strings.EqualFold(p[0], "Bearer") {
		return p[1]
	}

	// EventSource clients cannot set headers.
	if _, ok := s.queryToken[route]; ok {
		return strings.TrimSpace(r.URL.Query().Get("access_token"))
	}

	return ""
}

func verifyMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, jwt.ErrInvalidPayload):
		return "Invalid token payload"
	default:
		return "Invalid token"
	}
}

func middlewareAuthentication(state *authState) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if state.isPublic(r.Method, route) {
				next.ServeHTTP(w, r)
				return
			}

			raw := state.token(r, route)
			if raw == "" {
				writeJSON(w, errorResponse{Message: "Token not provided"}, http.StatusUnauthorized)
				return
			}

			claims, err := state.verifier.Verify(raw)
			if err != nil {
				writeJSON(w, errorResponse{Message: verifyMessage(err)}, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			if state.guard != nil {
				role, err := state.guard(ctx, claims.AdminID())
				if errors.Is(err, ErrAccountUnavailable) {
					writeJSON(w, errorResponse{Message: "Account not available"}, http.StatusUnauthorized)
					return
				}
				if err != nil {
					slog.ErrorContext(ctx, "failed to resolve account for token", "admin_id", claims.AdminID(), "error", err)
					writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
					return
				}
				claims.Role = role
			}

			if _, ok := allowedRoles[claims.Role]; !ok {
				writeJSON(w, errorResponse{Message: "Unauthorized role"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(ctx, claims)))
		})
	}
}

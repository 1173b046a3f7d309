package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

// maintenanceAll closes every route except the OpenAPI document.
const maintenanceAll = "*"

// middlewareMaintenance answers 503 for routes listed in
// app.maintenance.endpoints. An entry is either a route pattern such as
// "/api/v1/careers/:id", a method and pattern such as "POST /api/v1/public/applications",
// or "*" for the whole API.
func middlewareMaintenance(cfg config.Config) Middleware {
	closed := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			method, path, found := strings.Cut(strings.TrimSpace(endpoint), " ")
			if found {
				endpoint = strings.ToUpper(method) + " " + strings.TrimSpace(path)
			}
			closed[endpoint] = struct{}{}
		}
	}

	isClosed := func(r *http.Request) bool {
		if len(closed) == 0 || r.URL.Path == "/api/docs/openapi.json" {
			return false
		}
		route := matchedRoutePath(r)
		for _, key := range []string{maintenanceAll, route, r.Method + " " + route} {
			if _, ok := closed[key]; ok {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isClosed(r) {
				w.Header().Set("Retry-After", "120")
				WriteError(r.Context(), w, goerror.NewBusiness("Service is under maintenance", goerror.CodeServiceUnavailable))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

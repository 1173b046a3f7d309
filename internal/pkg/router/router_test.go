package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
)

type fakeJWT struct {
	claims jwt.Claims
	err    error
}

func (f fakeJWT) Issue(jwt.Subject) (string, error) { return "token", nil }
func (f fakeJWT) Verify(string) (jwt.Claims, error) { return f.claims, f.err }
func (f fakeJWT) TTL() time.Duration                { return time.Hour }

type fakeEnforcer struct {
	allow bool
	err   error
}

func (f fakeEnforcer) Enforce(...any) (bool, error) { return f.allow, f.err }

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "cid-fixed" }

func claimsFor(id, role string) jwt.Claims {
	c := jwt.Claims{Role: role}
	c.Subject = id
	return c
}

func newTestRouter(j jwt.JWT, e Enforcer) *Router {
	return NewRouter(Config{
		UUID:       fakeUUID{},
		JWT:        j,
		Instrument: instrument.NewNoop(),
		Enforcer:   e,
	})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Message
}

func TestMiddlewareAuthentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		jwt        fakeJWT
		guard      AccountGuard
		wantStatus int
		wantMsg    string
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized, wantMsg: "Token not provided"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantMsg: "Token not provided"},
		{name: "expired", header: "Bearer t", jwt: fakeJWT{err: jwt.ErrTokenExpired}, wantStatus: http.StatusUnauthorized, wantMsg: "Token expired"},
		{name: "bad signature", header: "Bearer t", jwt: fakeJWT{err: jwt.ErrTokenSignature}, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "bad payload", header: "Bearer t", jwt: fakeJWT{err: jwt.ErrInvalidPayload}, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token payload"},
		{
			name:   "deactivated account",
			header: "Bearer t",
			jwt:    fakeJWT{claims: claimsFor("9", "admin")},
			guard: func(context.Context, int64) (string, error) {
				return "", ErrAccountUnavailable
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Account not available",
		},
		{
			name:   "guard failure",
			header: "Bearer t",
			jwt:    fakeJWT{claims: claimsFor("9", "admin")},
			guard: func(context.Context, int64) (string, error) {
				return "", errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:   "role not permitted",
			header: "Bearer t",
			jwt:    fakeJWT{claims: claimsFor("9", "admin")},
			guard: func(context.Context, int64) (string, error) {
				return "editor", nil
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Unauthorized role",
		},
		{
			name:       "ok",
			header:     "Bearer t",
			jwt:        fakeJWT{claims: claimsFor("9", "super_admin")},
			wantStatus: http.StatusOK,
			wantMsg:    "ok for 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ro := newTestRouter(tt.jwt, nil)
			ro.SetAccountGuard(tt.guard)
			ro.GET("/api/v1/auth/me", func(r *Request) (any, error) {
				return okMessage{msg: "ok for " + jwt.GetAuth(r.Context()).Subject}, nil
			})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			// Act
			ro.ServeHTTP(rec, req)

			// Assert
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if msg := decodeMessage(t, rec); msg != tt.wantMsg {
				t.Fatalf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

type okMessage struct{ msg string }

func (o okMessage) Message() string { return o.msg }

func TestMiddlewareAuthentication_GuardRoleWins(t *testing.T) {
	// Arrange
	ro := newTestRouter(fakeJWT{claims: claimsFor("3", "super_admin")}, nil)
	ro.SetAccountGuard(func(context.Context, int64) (string, error) { return "admin", nil })
	var seen string
	ro.GET("/api/v1/auth/me", func(r *Request) (any, error) {
		seen = jwt.GetAuth(r.Context()).Role
		return nil, nil
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer t")

	// Act
	ro.ServeHTTP(httptest.NewRecorder(), req)

	// Assert
	if seen != "admin" {
		t.Fatalf("role in context = %q, want admin", seen)
	}
}

func TestPublicEndpointSkipsAuth(t *testing.T) {
	// Arrange
	ro := newTestRouter(fakeJWT{err: jwt.ErrInvalidToken}, nil)
	ro.POST("/api/v1/auth/login", func(*Request) (any, error) { return map[string]string{"x": "y"}, nil })
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get(HeaderCorrelationID) != "cid-fixed" {
		t.Fatalf("missing correlation id header")
	}
}

func TestQueryTokenOnlyForStream(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "stream accepts query token", path: "/api/v1/notifications-stream", wantStatus: http.StatusOK},
		{name: "others ignore query token", path: "/api/v1/notifications", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ro := newTestRouter(fakeJWT{claims: claimsFor("1", "admin")}, nil)
			ro.GET(tt.path, func(*Request) (any, error) { return map[string]int{}, nil })
			rec := httptest.NewRecorder()

			ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path+"?access_token=abc", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		enforcer   Enforcer
		wantStatus int
	}{
		{name: "allowed", enforcer: fakeEnforcer{allow: true}, wantStatus: http.StatusOK},
		{name: "denied", enforcer: fakeEnforcer{}, wantStatus: http.StatusForbidden},
		{name: "enforcer error", enforcer: fakeEnforcer{err: errors.New("boom")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ro := newTestRouter(fakeJWT{claims: claimsFor("1", "admin")}, tt.enforcer)
			ro.DELETE("/api/v1/admins/:id", func(*Request) (any, error) { return map[string]int{}, nil }, ro.Authorize("admins", "delete"))
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admins/2", nil)
			req.Header.Set("Authorization", "Bearer t")
			rec := httptest.NewRecorder()

			// Act
			ro.ServeHTTP(rec, req)

			// Assert
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestErrorCodec(t *testing.T) {
	// Arrange
	ro := newTestRouter(fakeJWT{claims: claimsFor("1", "admin")}, nil)
	ro.POST("/api/v1/auth/login/verify", func(*Request) (any, error) {
		return nil, goerror.NewBusiness("OTP expired or invalid", goerror.CodeGone)
	})
	rec := httptest.NewRecorder()

	// Act
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/verify", nil))

	// Assert
	if rec.Code != http.StatusGone {
		t.Fatalf("status = %d, want 410", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "OTP expired or invalid" {
		t.Fatalf("message = %q", msg)
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{name: "public peer ignores headers", remote: "203.0.113.9:5555", headers: map[string]string{"X-Real-IP": "1.2.3.4"}, want: "203.0.113.9"},
		{name: "proxy true client ip", remote: "10.0.0.2:80", headers: map[string]string{"True-Client-IP": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "proxy forwarded for", remote: "127.0.0.1:80", headers: map[string]string{"X-Forwarded-For": " 198.51.100.8 , 10.0.0.1"}, want: "198.51.100.8"},
		{name: "proxy garbage header", remote: "192.168.1.5:80", headers: map[string]string{"X-Real-IP": "nope"}, want: "192.168.1.5"},
		{name: "mapped v4", remote: "[::ffff:203.0.113.1]:80", want: "203.0.113.1"},
		{name: "unparsable peer", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			// Act
			got := clientAddr(req)

			// Assert
			if (tt.want == "" && got.IsValid()) || (tt.want != "" && got.String() != tt.want) {
				t.Fatalf("clientAddr() = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddlewareMaintenance(t *testing.T) {
	// Arrange
	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  maintenance:
    endpoints: "post /api/v1/public/applications, /api/v1/auth/login"
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	ro := NewRouter(Config{Config: cfg, UUID: fakeUUID{}, JWT: fakeJWT{}, Instrument: instrument.NewNoop()})
	ok := func(*Request) (any, error) { return map[string]string{}, nil }
	ro.POST("/api/v1/public/applications", ok)
	ro.GET("/api/v1/public/facilities", ok)
	ro.POST("/api/v1/auth/login", ok)

	tests := []struct {
		method, path string
		want         int
	}{
		{method: http.MethodPost, path: "/api/v1/public/applications", want: http.StatusServiceUnavailable},
		{method: http.MethodGet, path: "/api/v1/public/facilities", want: http.StatusOK},
		{method: http.MethodPost, path: "/api/v1/auth/login", want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()

			// Act
			ro.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`)))

			// Assert
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusServiceUnavailable && rec.Header().Get("Retry-After") == "" {
				t.Fatal("missing Retry-After")
			}
		})
	}
}

func TestMiddlewareRecoverer(t *testing.T) {
	// Arrange
	ro := newTestRouter(fakeJWT{claims: claimsFor("9", "admin")}, nil)
	ro.SetAccountGuard(func(context.Context, int64) (string, error) { return "admin", nil })
	ro.GET("/api/v1/boom", func(*Request) (any, error) { panic("boom") })
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil)
	req.Header.Set("Authorization", "Bearer t")

	// Act
	ro.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Internal server error" {
		t.Fatalf("message = %q", msg)
	}
}

func TestNormalizeCID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "  abc-123 ", want: "abc-123"},
		{in: "bad\r\nheader", want: ""},
		{in: "caf\u00e9", want: ""},
		{in: strings.Repeat("a", 200), want: strings.Repeat("a", 128)},
	}

	for _, tt := range tests {
		if got := normalizeCID(tt.in); got != tt.want {
			t.Fatalf("normalizeCID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoggedBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		capped      bool
		want        any
	}{
		{name: "empty", contentType: "application/json", want: nil},
		{name: "json stays raw", contentType: "application/json; charset=utf-8", body: `{"a":1}`, want: json.RawMessage(`{"a":1}`)},
		{name: "capped json", contentType: "application/json", body: `{"a":`, capped: true, want: `{"a":...(truncated)`},
		{name: "multipart", contentType: "multipart/form-data; boundary=x", want: "<multipart body omitted>"},
		{name: "text", contentType: "text/plain", body: "hi", want: "hi"},
		{name: "binary", contentType: "image/png", body: "\x89PNG", want: "<binary body omitted>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := loggedBody(tt.contentType, []byte(tt.body), tt.capped)

			// Assert
			if raw, ok := tt.want.(json.RawMessage); ok {
				if g, ok := got.(json.RawMessage); !ok || string(g) != string(raw) {
					t.Fatalf("loggedBody() = %#v, want %s", got, raw)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("loggedBody() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStatusRecorder_SkipsEventStreams(t *testing.T) {
	// Arrange
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), body: &bytes.Buffer{}}
	rec.Header().Set("Content-Type", "text/event-stream")

	// Act
	rec.Flush()
	_, _ = rec.Write([]byte("event: notification\n\n"))

	// Assert
	if rec.body != nil || rec.code() != http.StatusOK || rec.bytes == 0 {
		t.Fatalf("recorder = %+v", rec)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/pkg/logger"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func adminClaims(email string, expiresIn time.Duration) AdminClaims {
	return AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func TestAdminAuth(t *testing.T) {
	auth := NewAdminAuth(secret, []string{" Admin@Astroya.com.br "}, logger.NewNop())

	var gotEmail string
	protected := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = AdminEmail(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid admin", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), adminClaims("admin@astroya.com.br", time.Hour)), wantStatus: http.StatusNoContent},
		{name: "email case insensitive", header: "bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), adminClaims("ADMIN@astroya.com.br", time.Hour)), wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), adminClaims("admin@astroya.com.br", time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "wrong algorithm", header: "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), adminClaims("admin@astroya.com.br", time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), adminClaims("admin@astroya.com.br", -time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "no email", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), adminClaims("", time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "not an admin", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), adminClaims("client@example.com", time.Hour)), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEmail = ""
			req := httptest.NewRequest(http.MethodGet, "/admin/availability-rules", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "admin@astroya.com.br", gotEmail)
			}
		})
	}
}

type httpObservation struct {
	method, route, status string
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []httpObservation
}

func (f *fakeRecorder) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, httpObservation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/availability/{date}/unavailable-slots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/availability/2025-06-10/unavailable-slots", nil))

	require.Len(t, recorder.obs, 1)
	assert.Equal(t, httpObservation{"GET", "/availability/{date}/unavailable-slots", "418"}, recorder.obs[0])
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(60, 2, time.Minute, logger.NewNop())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/consultations", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	// другой клиент не затронут
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))

	// одна секунда восстанавливает один токен
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

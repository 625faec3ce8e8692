package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laptop-inventory-api/internal/config"

	"github.com/stretchr/testify/assert"
)

// stubHandler records which handler the router dispatched to
type stubHandler struct {
	called string
}

func (s *stubHandler) RegisterLaptopHandler(w http.ResponseWriter, r *http.Request) {
	s.called = "register"
	w.WriteHeader(http.StatusCreated)
}

func (s *stubHandler) GetLaptopHandler(w http.ResponseWriter, r *http.Request) {
	s.called = "lookup"
	w.WriteHeader(http.StatusOK)
}

func (s *stubHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.called = "health"
	w.WriteHeader(http.StatusOK)
}

func testRouterConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			RateLimitRPS:    100,
			RateLimitBurst:  200,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			EnableCORS:      true,
			AllowedOrigins:  []string{"*"},
			TrustedProxies:  []string{},
		},
	}
}

func TestRouterDispatch(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantCalled string
		wantStatus int
	}{
		{"registration", http.MethodPost, "/api/LaptopDetails", "register", http.StatusCreated},
		{"lookup", http.MethodGet, "/api/laptop/AST-2024-001", "lookup", http.StatusOK},
		{"health", http.MethodGet, "/api/health", "health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &stubHandler{}
			r := NewRouter(h, testRouterConfig())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCalled, h.called)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	h := &stubHandler{}
	r := NewRouter(h, testRouterConfig())

	req := httptest.NewRequest(http.MethodDelete, "/api/LaptopDetails", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Empty(t, h.called)
}

func TestRouterCORSHeaders(t *testing.T) {
	h := &stubHandler{}
	r := NewRouter(h, testRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestRouterPreflight(t *testing.T) {
	h := &stubHandler{}
	r := NewRouter(h, testRouterConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/LaptopDetails", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// Preflight is answered by the CORS middleware, not the handler
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, h.called)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"rice-leaf-detection/internal/middleware"
	"rice-leaf-detection/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLogger() (log.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return log.NewWithCore(core), logs
}

func TestRequestID(t *testing.T) {
	l, logs := newLogger()
	mw := middleware.New(l, 0)

	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatalf("expected generated request id")
		}
		if seen != id {
			t.Errorf("context id %q does not match header %q", seen, id)
		}
	})

	t.Run("Caller id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "req-123" {
			t.Errorf("expected req-123, got %q", got)
		}
		if seen != "req-123" {
			t.Errorf("expected req-123 in context, got %q", seen)
		}
	})

	t.Run("Access log carries request id", func(t *testing.T) {
		entries := logs.FilterField(zap.String("request_id", "req-123")).All()
		if len(entries) == 0 {
			t.Fatalf("expected an access log entry tagged with the request id")
		}
	})
}

func TestRateLimit(t *testing.T) {
	newRouter := func(perMin int) *gin.Engine {
		l, _ := newLogger()
		mw := middleware.New(l, perMin)
		r := gin.New()
		r.POST("/classify", mw.RateLimit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	do := func(r *gin.Engine, ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/classify", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("Rejects burst over limit", func(t *testing.T) {
		r := newRouter(1)
		if code := do(r, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := do(r, "10.0.0.1"); code != http.StatusTooManyRequests {
			t.Fatalf("second request: expected 429, got %d", code)
		}
	})

	t.Run("Clients are limited independently", func(t *testing.T) {
		r := newRouter(1)
		do(r, "10.0.0.1")
		if code := do(r, "10.0.0.2"); code != http.StatusOK {
			t.Errorf("other client: expected 200, got %d", code)
		}
	})

	t.Run("Disabled limiter passes everything", func(t *testing.T) {
		r := newRouter(0)
		for i := 0; i < 20; i++ {
			if code := do(r, "10.0.0.1"); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})
}

package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vacinas", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// Anonymous requests key on the client IP.
	key := KeyByUserOrIP()(c)
	if !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("expected ip-based key, got %q", key)
	}

	// Authenticated requests key on the user id set by RequireAuth.
	c.Set("userID", "42")
	if key := KeyByUserOrIP()(c); key != "user:42" {
		t.Fatalf("expected user-based key, got %q", key)
	}
}

func TestNewRateLimiter_CoercesInvalidBurst(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}

func TestRateLimiter_getVisitor_ReusesLimiter(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	lim := rl.getVisitor("user:42")
	if lim == nil {
		t.Fatalf("expected a limiter")
	}
	if got := rl.getVisitor("user:42"); got != lim {
		t.Fatalf("same key should reuse the same limiter instance")
	}
	if other := rl.getVisitor("user:43"); other == lim {
		t.Fatalf("distinct keys must not share a limiter")
	}
}

func TestRateLimiter_Handler_RejectsOverBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// rps tiny and burst 2: third immediate request is rejected.
	rl := NewRateLimiter(0.001, 2, KeyByUserOrIP())

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/vacinas", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/vacinas", nil)
		req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("requests within burst should pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("request over burst should get 429, got %v", statuses)
	}
}

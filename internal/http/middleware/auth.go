// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication for mutating endpoints.
// Read-only routes stay public; anything that writes goes through
// RequireAuth, which verifies the signed access token issued at login.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/auth"
)

// userIDKey is the Gin context key under which the authenticated user id is
// stored (as a decimal string, so downstream consumers such as the rate
// limiter and the access logger can treat it uniformly).
const userIDKey = "userID"

// RequireAuth returns a Gin middleware that rejects requests lacking a valid
// "Authorization: Bearer <token>" header with a 401 error envelope.
//
// On success the authenticated user id is stored in the context under
// "userID" and the request proceeds. Missing header, malformed scheme,
// expired token, and bad signature are deliberately indistinguishable to the
// client.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		const scheme = "Bearer "
		if raw == "" || !strings.HasPrefix(raw, scheme) {
			unauthorized(c)
			return
		}

		uid, err := tokens.Parse(strings.TrimSpace(raw[len(scheme):]))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userIDKey, strconv.FormatUint(uint64(uid), 10))
		c.Next()
	}
}

// unauthorized aborts with the standard 401 envelope, mirroring the shape
// produced by handlers.Fail without importing the handlers package.
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    "missing or invalid bearer token",
	})
}

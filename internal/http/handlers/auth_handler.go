// Credential HTTP handlers.
//
// This file exposes the authentication endpoints:
//   - POST /register (create a credential)
//   - POST /login    (authenticate, returns {"access_token": ...})
//
// Both endpoints are public; the token they produce is what gates the
// mutating routes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// CredentialsRequest is the JSON payload for /register and /login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *Handlers) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.auth.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrCredentialsRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		case errors.Is(err, services.ErrUsernameExists):
			fail(c, http.StatusConflict, ErrCodeConflict, "username '"+req.Username+"' already exists")
		default:
			failInternal(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "user registered"})
}

// Login handles POST /login.
func (h *Handlers) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid username or password")
			return
		}
		failInternal(c, err)
		return
	}
	ok(c, http.StatusOK, TokenResponse{AccessToken: token})
}

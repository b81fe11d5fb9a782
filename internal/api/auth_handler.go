package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/service"
)

// AuthHandler handles login, logout, session inspection and the
// session-change event stream
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, session, err := h.services.Auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, models.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend not configured"})
		default:
			h.log.Error().Err(err).Msg("Sign-in failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"email":      session.Email,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout handles POST /v1/auth/logout
// Always succeeds; a dead token means the session is already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token != "" {
		if err := h.services.Auth.SignOut(ctx, token); err != nil {
			h.log.Error().Err(err).Msg("Sign-out failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{"signed_out": true})
}

// Session handles GET /v1/auth/session
// Reports whether a session is present, the only auth state the pages need.
func (h *AuthHandler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	session, err := h.services.Auth.Session(ctx, token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"email":         session.Email,
		"expires_at":    session.ExpiresAt.Format(time.RFC3339),
	})
}

// Events handles GET /v1/auth/events
// Server-sent events carrying session-change notifications. One long-lived
// subscription per connection, torn down when the client goes away.
func (h *AuthHandler) Events(c *gin.Context) {
	events, unsubscribe := h.services.Auth.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("session", event)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

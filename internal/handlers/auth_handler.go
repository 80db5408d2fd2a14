package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/middleware"
	"sheweds-backend/internal/models"
	"sheweds-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies the admin password and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	h.setSessionCookie(c, token, h.authService.SessionMaxAge())
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Session reports whether the current request carries a valid session. The
// auth middleware has already vetted it by the time this runs.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "role": "admin"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := c.Request.TLS != nil
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", secure, true)
}

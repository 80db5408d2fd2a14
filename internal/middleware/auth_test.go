package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/config"
	"sheweds-backend/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(&config.Config{
		AdminPassword: "secret",
		SessionSecret: "test-session-secret",
	})

	router := gin.New()
	router.GET("/admin", AuthRequired(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, auth
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAuthRequiredRejectsGarbageToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestAuthRequiredAcceptsBearerToken(t *testing.T) {
	router, auth := newAuthRouter(t)

	token, err := auth.Login("secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthRequiredAcceptsSessionCookie(t *testing.T) {
	router, auth := newAuthRouter(t)

	token, err := auth.Login("secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with session cookie, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSecurityHeadersAllowSameOriginFraming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Fatalf("expected X-Frame-Options SAMEORIGIN, got %q", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
}

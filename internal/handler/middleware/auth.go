package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hiburan-booking-gateway/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxAuthTokenKey = "auth_token"
	ctxUserIDKey    = "user_id"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireAuth requires a bearer token and keeps it in the context for
// verbatim forwarding to the backend. Local validation only happens when a
// shared JWT secret is configured; otherwise the backend is the sole judge
// of the token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		if m.jwtService.Enabled() {
			claims, err := m.jwtService.ValidateToken(token)
			if err != nil {
				slog.Warn("token validation failed in auth middleware", "error", err.Error())
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			c.Set(ctxUserIDKey, claims.UserID)
		}

		c.Set(ctxAuthTokenKey, token)
		c.Next()
	}
}

// RequireProxyAuth only checks that the Authorization header is present. The
// payment proof proxy forwards the header untouched and lets the backend
// reject bad tokens, so the body here must match what the backend's own
// middleware would have said.
func (m *AuthMiddleware) RequireProxyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header required",
			})
			c.Abort()
			return
		}

		c.Set(ctxAuthTokenKey, bearerToken(c))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetAuthToken returns the raw bearer token stored by the auth middleware.
func GetAuthToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAuthTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// GetUserID returns the authenticated user ID when local validation ran.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

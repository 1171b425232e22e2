// Package http provides session enforcement for protected routes.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	authService "github.com/clinicops/admin-api/internal/auth/service"
	"github.com/clinicops/admin-api/internal/httputil"
)

// sessionContextKey is the gin context key under which verified session
// claims are stored.
const sessionContextKey = "session_claims"

// SessionMiddleware verifies the bearer token on every request and aborts
// with 401 when the token is missing, malformed, expired, or badly signed.
func SessionMiddleware(tokenService authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			httputil.HandleErrorGin(c, authDomain.ErrUnauthenticated, logger)
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(token)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, claims)
		c.Next()
	}
}

// GetSession returns the verified session claims set by SessionMiddleware.
func GetSession(c *gin.Context) (*authService.SessionClaims, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*authService.SessionClaims)
	return claims, ok
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

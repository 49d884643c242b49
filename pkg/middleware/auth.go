package middleware

import (
	"net/http"
	"strings"

	"vidtube/pkg/jwt"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key holding the authenticated identity.
	UserIDKey = "user_id"

	accessTokenCookie = "accessToken"
)

// AuthMiddleware resolves the caller's identity from a bearer token or the
// accessToken cookie. The identity is opaque to the rest of the service.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil || claims.UserID == "" {
			response.Abort(c, http.StatusUnauthorized, "Invalid access token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

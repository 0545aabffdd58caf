// Package middleware provides HTTP middleware for the blog service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/httperr"
	"github.com/kiernans/blog-top/internal/models"
	"github.com/kiernans/blog-top/internal/service"
)

// Context keys set by the auth gate.
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "currentUserID"
	ContextTokenKey  = "authToken"
)

// Auth returns the bearer-token gate for protected subtrees.
//
// The gate validates the token signature and expiry, rejects denylisted
// tokens, and resolves the id claim back to a live user row so a deleted
// user cannot act on a still-valid token. On success the user is attached
// to the request context.
func Auth(authService service.AuthService, jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header.")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		revoked, err := authService.IsTokenRevoked(c.Request.Context(), token)
		if err != nil || revoked {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), claims)
		if err != nil {
			abortUnauthorized(c, "Not authenticated.")
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by the auth gate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's id.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CurrentToken returns the raw bearer token for the request.
func CurrentToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.New(http.StatusUnauthorized, detail))
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

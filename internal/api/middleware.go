package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mcastellanos/storefront/internal/apperr"
	"github.com/mcastellanos/storefront/internal/user"
)

const (
	ctxUserID = "userID"
	ctxRole   = "userRole"
)

// RequireAuth resolves the bearer token and stores the caller's identity
// in the gin context for handlers downstream.
func RequireAuth(auth *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortError(c, apperr.New(apperr.Unauthorized, "no token provided"))
			return
		}
		claims, err := auth.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortError(c, err)
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != user.RoleAdmin {
			abortError(c, apperr.New(apperr.Forbidden, "admin only"))
			return
		}
		c.Next()
	}
}

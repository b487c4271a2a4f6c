package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-admin/internal/auth"
)

const (
	AdminTokenHeader = "X-Admin-Token"
	AdminTokenQuery  = "token"
)

// AdminToken extracts the candidate token; the header wins over the query parameter.
func AdminToken(c *gin.Context) string {
	if t := c.GetHeader(AdminTokenHeader); t != "" {
		return t
	}
	return c.Query(AdminTokenQuery)
}

// RequireAdmin rejects the request with 401 unless the authorizer accepts its token.
// A missing token and a wrong token produce the same response.
func RequireAdmin(a auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Check(AdminToken(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

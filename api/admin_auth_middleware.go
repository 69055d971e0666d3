package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the dashboard endpoints with a bearer session token
// issued by the login handler.
func AdminAuth(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

		if !found || !sessions.Valid(strings.TrimSpace(token)) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			c.Abort()
			return
		}
	}
}

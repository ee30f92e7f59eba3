package handlers

import (
	"net/http"
	"strings"

	"quizdeck/internal/models"

	"github.com/gin-gonic/gin"
)

// Gin context keys populated by authMiddleware.
const (
	ctxUserID   = "userId"
	ctxUsername = "username"
	ctxRole     = "role"
)

// authMiddleware verifies the bearer token and stores the asserted identity
// in the request context. Any failure aborts before the downstream handler.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUsername, claims.Username)
	c.Set(ctxRole, claims.Role)
	c.Next()
}

// adminOnly gates mutating quiz routes. It runs after authMiddleware, so a
// missing role means the request never carried a verified identity.
func (h *Handler) adminOnly(c *gin.Context) {
	role, ok := c.Get(ctxRole)
	if !ok || role != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "admin access required",
		})
		return
	}
	c.Next()
}

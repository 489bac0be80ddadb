package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/service"
)

const userIDKey = "userId"

// userIdMiddleware authenticates the bearer token and stores the decoded
// user id in the request context. The three failure classes get distinct
// bodies: missing header, invalid token, expired token.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, service.ErrTokenExpired) {
			msg = "token expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// userID returns the authenticated user id stored by the middleware.
func userID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

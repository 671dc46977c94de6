package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedUserID pulls the caller identity set by the auth middleware.
func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := userIDInterface.(uuid.UUID)
	return userID, ok
}

// notFound writes the generic fallthrough response. Cross-user and truly
// missing resources get the same body so existence never leaks.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

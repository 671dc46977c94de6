package routes

import (
	"net/http"

	"scrawl-notes/scrawl/services"
	"scrawl-notes/scrawl/utils/token"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes exposes the live event feed. Extraction accepts a
// query parameter as well as the Authorization header, because browser
// WebSocket clients cannot set headers.
func RegisterWebSocketRoutes(router *gin.Engine, wsService services.WebSocketServiceInterface, authService services.AuthServiceInterface) {
	router.GET("/ws", func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		wsService.HandleConnection(c, claims)
	})
}

package routes

import (
	"errors"
	"net/http"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/middleware"
	"scrawl-notes/scrawl/services"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, db *database.Database, userService services.UserServiceInterface, authService services.AuthServiceInterface) {
	// Signup is the only unauthenticated user endpoint
	router.POST("/users", func(c *gin.Context) { CreateUser(c, db, userService) })

	group := router.Group("/users")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("/:id", func(c *gin.Context) { GetUserById(c, db, userService) })
	}
}

func CreateUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	var userData map[string]interface{}
	if err := c.ShouldBindJSON(&userData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := userService.CreateUser(db, userData)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) ||
			errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "That username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+user.ID.String())
	c.JSON(http.StatusCreated, user)
}

// GetUserById only resolves the caller's own profile; any other id falls
// through to the generic not-found response.
func GetUserById(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id := c.Param("id")
	if id != userID.String() {
		notFound(c)
		return
	}

	user, err := userService.GetUserById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

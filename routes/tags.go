package routes

import (
	"errors"
	"net/http"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/middleware"
	"scrawl-notes/scrawl/services"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(router *gin.Engine, db *database.Database, tagService services.TagServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/tags")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) { GetTags(c, db, tagService) })
		group.POST("", func(c *gin.Context) { CreateTag(c, db, tagService) })

		group.GET("/:id", func(c *gin.Context) { GetTagById(c, db, tagService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateTag(c, db, tagService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteTag(c, db, tagService) })
	}
}

func GetTags(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tags, err := tagService.GetTags(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func CreateTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var tagData map[string]interface{}
	if err := c.ShouldBindJSON(&tagData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := tagService.CreateTag(db, userID, tagData)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name in request body"})
			return
		}
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+tag.ID.String())
	c.JSON(http.StatusCreated, tag)
}

func GetTagById(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tag, err := tagService.GetTagById(db, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrTagNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func UpdateTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var tagData map[string]interface{}
	if err := c.ShouldBindJSON(&tagData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := tagService.UpdateTag(db, userID, c.Param("id"), tagData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name in request body"})
			return
		}
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name already exists"})
			return
		}
		if errors.Is(err, services.ErrTagNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func DeleteTag(c *gin.Context, db *database.Database, tagService services.TagServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := tagService.DeleteTag(db, userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrTagNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

package routes

import (
	"errors"
	"net/http"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/middleware"
	"scrawl-notes/scrawl/services"

	"github.com/gin-gonic/gin"
)

func RegisterFolderRoutes(router *gin.Engine, db *database.Database, folderService services.FolderServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/folders")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) { GetFolders(c, db, folderService) })
		group.POST("", func(c *gin.Context) { CreateFolder(c, db, folderService) })

		group.GET("/:id", func(c *gin.Context) { GetFolderById(c, db, folderService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateFolder(c, db, folderService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteFolder(c, db, folderService) })
	}
}

func GetFolders(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	folders, err := folderService.GetFolders(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, folders)
}

func CreateFolder(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var folderData map[string]interface{}
	if err := c.ShouldBindJSON(&folderData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := folderService.CreateFolder(db, userID, folderData)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name in request body"})
			return
		}
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+folder.ID.String())
	c.JSON(http.StatusCreated, folder)
}

func GetFolderById(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	folder, err := folderService.GetFolderById(db, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrFolderNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, folder)
}

func UpdateFolder(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var folderData map[string]interface{}
	if err := c.ShouldBindJSON(&folderData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := folderService.UpdateFolder(db, userID, c.Param("id"), folderData)
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
			c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name already exists"})
			return
		}
		if errors.Is(err, services.ErrFolderNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, folder)
}

func DeleteFolder(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := folderService.DeleteFolder(db, userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrFolderNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

package routes

import (
	"errors"
	"net/http"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/middleware"
	"scrawl-notes/scrawl/services"

	"github.com/gin-gonic/gin"
)

func RegisterNoteRoutes(router *gin.Engine, db *database.Database, noteService services.NoteServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/notes")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) { GetNotes(c, db, noteService) })
		group.POST("", func(c *gin.Context) { CreateNote(c, db, noteService) })

		group.GET("/:id", func(c *gin.Context) { GetNoteById(c, db, noteService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateNote(c, db, noteService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteNote(c, db, noteService) })
	}
}

func GetNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	params := make(map[string]interface{})
	if searchTerm := c.Query("searchTerm"); searchTerm != "" {
		params["search_term"] = searchTerm
	}
	if folderID := c.Query("folderId"); folderID != "" {
		params["folder_id"] = folderID
	}
	if tagID := c.Query("tagId"); tagID != "" {
		params["tag_id"] = tagID
	}

	notes, err := noteService.GetNotes(db, userID, params)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var noteData map[string]interface{}
	if err := c.ShouldBindJSON(&noteData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.CreateNote(db, userID, noteData)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) ||
			errors.Is(err, services.ErrInvalidReference) ||
			errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+note.ID.String())
	c.JSON(http.StatusCreated, note)
}

func GetNoteById(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	note, err := noteService.GetNoteById(db, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

func UpdateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var noteData map[string]interface{}
	if err := c.ShouldBindJSON(&noteData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.UpdateNote(db, userID, c.Param("id"), noteData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) ||
			errors.Is(err, services.ErrMissingField) ||
			errors.Is(err, services.ErrInvalidReference) ||
			errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := noteService.DeleteNote(db, userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The id is not valid"})
			return
		}
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

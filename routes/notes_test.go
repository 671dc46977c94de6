package routes

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"
	"scrawl-notes/scrawl/services"
)

type MockNoteService struct{}

func (m *MockNoteService) CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error) {
	title, ok := noteData["title"].(string)
	if !ok || title == "" {
		return models.Note{}, services.ErrMissingField
	}

	if folderID, ok := noteData["folder_id"].(string); ok && folderID != knownFolder {
		return models.Note{}, fmt.Errorf("%w: folder does not exist", services.ErrInvalidReference)
	}
	if tags, ok := noteData["tags"].([]interface{}); ok {
		for _, raw := range tags {
			if id, ok := raw.(string); !ok || id != knownTag {
				return models.Note{}, fmt.Errorf("%w: one or more tags do not exist", services.ErrInvalidReference)
			}
		}
	}

	return models.Note{
		ID:     uuid.Must(uuid.Parse(knownNote)),
		UserID: userID,
		Title:  title,
	}, nil
}

func (m *MockNoteService) GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.Note, error) {
	if !services.IsValidID(id) {
		return models.Note{}, services.ErrInvalidID
	}
	if id == knownNote {
		return models.Note{ID: uuid.Must(uuid.Parse(id)), UserID: userID, Title: "Test Note"}, nil
	}
	return models.Note{}, services.ErrNoteNotFound
}

func (m *MockNoteService) UpdateNote(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Note, error) {
	if !services.IsValidID(id) {
		return models.Note{}, services.ErrInvalidID
	}
	if id != knownNote {
		return models.Note{}, services.ErrNoteNotFound
	}
	if title, present := updatedData["title"]; present {
		if s, ok := title.(string); !ok || s == "" {
			return models.Note{}, services.ErrMissingField
		}
	}
	note := models.Note{ID: uuid.Must(uuid.Parse(id)), UserID: userID, Title: "Test Note"}
	if title, ok := updatedData["title"].(string); ok {
		note.Title = title
	}
	return note, nil
}

func (m *MockNoteService) DeleteNote(db *database.Database, userID uuid.UUID, id string) error {
	if !services.IsValidID(id) {
		return services.ErrInvalidID
	}
	if id != knownNote {
		return services.ErrNoteNotFound
	}
	return nil
}

func (m *MockNoteService) GetNotes(db *database.Database, userID uuid.UUID, params map[string]interface{}) ([]models.Note, error) {
	if folderID, ok := params["folder_id"].(string); ok && !services.IsValidID(folderID) {
		return nil, services.ErrInvalidID
	}
	if tagID, ok := params["tag_id"].(string); ok && !services.IsValidID(tagID) {
		return nil, services.ErrInvalidID
	}

	notes := []models.Note{
		{ID: uuid.Must(uuid.Parse(knownNote)), UserID: userID, Title: "Test Note"},
	}
	if term, ok := params["search_term"].(string); ok && term == "nothing" {
		return []models.Note{}, nil
	}
	return notes, nil
}

func setupNoteRouter() *gin.Engine {
	router := gin.Default()
	db := &database.Database{}
	RegisterNoteRoutes(router, db, &MockNoteService{}, testAuth)
	return router
}

func TestCreateNoteRoute(t *testing.T) {
	router := setupNoteRouter()

	t.Run("No Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/notes", bytes.NewBufferString(`{"title":"Test Note"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing Title", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "POST", "/notes", bytes.NewBufferString(`{"content":"body only"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Folder Reference", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"title":"Test Note","folder_id":"%s"}`, uuid.New())
		req := authedRequest(t, "POST", "/notes", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "folder does not exist")
	})

	t.Run("Unknown Tag Reference", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"title":"Test Note","tags":["%s"]}`, uuid.New())
		req := authedRequest(t, "POST", "/notes", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "tags do not exist")
	})

	t.Run("Created", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := fmt.Sprintf(`{"title":"Test Note","folder_id":"%s","tags":["%s"]}`, knownFolder, knownTag)
		req := authedRequest(t, "POST", "/notes", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/notes/"+knownNote, w.Header().Get("Location"))
	})
}

func TestGetNoteByIdRoute(t *testing.T) {
	router := setupNoteRouter()

	t.Run("Invalid Id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes/not-a-uuid", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
	})

	t.Run("Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes/"+knownNote, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Test Note")
	})
}

func TestUpdateNoteRoute(t *testing.T) {
	router := setupNoteRouter()

	t.Run("Empty Title Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "PUT", "/notes/"+knownNote, bytes.NewBufferString(`{"title":""}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "PUT", "/notes/"+uuid.New().String(), bytes.NewBufferString(`{"title":"Renamed"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Updated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "PUT", "/notes/"+knownNote, bytes.NewBufferString(`{"title":"Renamed"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed")
	})
}

func TestDeleteNoteRoute(t *testing.T) {
	router := setupNoteRouter()

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "DELETE", "/notes/"+uuid.New().String(), nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Deleted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "DELETE", "/notes/"+knownNote, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestGetNotesRoute(t *testing.T) {
	router := setupNoteRouter()

	t.Run("All", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Test Note")
	})

	t.Run("Search With No Matches", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes?searchTerm=nothing", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Invalid Folder Filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := authedRequest(t, "GET", "/notes?folderId=not-a-uuid", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

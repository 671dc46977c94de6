package services

import (
	"errors"
	"fmt"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type NoteServiceInterface interface {
	CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error)
	GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.Note, error)
	UpdateNote(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Note, error)
	DeleteNote(db *database.Database, userID uuid.UUID, id string) error
	GetNotes(db *database.Database, userID uuid.UUID, params map[string]interface{}) ([]models.Note, error)
}

type NoteService struct{}

// tagIDsFromPayload extracts the tags field as a slice of id strings. A nil
// result means the field was absent; a non-slice value is rejected.
func tagIDsFromPayload(data map[string]interface{}) ([]string, error) {
	raw, present := data["tags"]
	if !present {
		return nil, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: tags must be an array", ErrValidation)
	}

	ids := make([]string, 0, len(list))
	for _, item := range list {
		id, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: tags", ErrInvalidReference)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// validateNoteReferences runs the folder and tag reference checks together.
// Both execute even when one fails fast, since both results are needed to
// decide validity; the first error encountered is surfaced.
func validateNoteReferences(db *database.Database, folderID string, tagIDs []string, userID uuid.UUID) ([]models.Tag, error) {
	var resolvedTags []models.Tag
	g := new(errgroup.Group)

	g.Go(func() error {
		return ValidateFolderReference(db, folderID, userID)
	})

	g.Go(func() error {
		tags, err := ValidateTagReferences(db, tagIDs, userID)
		if err != nil {
			return err
		}
		resolvedTags = tags
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolvedTags, nil
}

func (s *NoteService) CreateNote(db *database.Database, userID uuid.UUID, noteData map[string]interface{}) (models.Note, error) {
	title, err := requireStringField(noteData, "title")
	if err != nil {
		return models.Note{}, err
	}

	var content string
	if raw, present := noteData["content"]; present {
		c, ok := raw.(string)
		if !ok {
			return models.Note{}, fmt.Errorf("%w: content must be a string", ErrValidation)
		}
		content = c
	}

	// JSON null means no folder; anything else present must be a usable id.
	var folderID string
	if raw, present := noteData["folder_id"]; present && raw != nil {
		fid, ok := raw.(string)
		if !ok || fid == "" {
			return models.Note{}, fmt.Errorf("%w: folder_id", ErrInvalidReference)
		}
		folderID = fid
	}

	tagIDs, err := tagIDsFromPayload(noteData)
	if err != nil {
		return models.Note{}, err
	}

	resolvedTags, err := validateNoteReferences(db, folderID, tagIDs, userID)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   title,
		Content: content,
		Tags:    resolvedTags,
	}
	if folderID != "" {
		fid := uuid.Must(uuid.Parse(folderID))
		note.FolderID = &fid
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	// Omit("Tags.*") writes the join rows without re-saving the tag records.
	if err := tx.Omit("Tags.*").Create(&note).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	event, err := models.NewEvent(
		"note.created",
		"note",
		userID,
		map[string]interface{}{
			"note_id": note.ID.String(),
			"user_id": note.UserID.String(),
			"title":   note.Title,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) GetNoteById(db *database.Database, userID uuid.UUID, id string) (models.Note, error) {
	if !IsValidID(id) {
		return models.Note{}, ErrInvalidID
	}

	var note models.Note
	if err := db.DB.Preload("Tags").
		First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

// UpdateNote applies only the provided fields. Ownership comes from the
// authenticated user id scoping every statement; a note belonging to someone
// else resolves to not-found.
func (s *NoteService) UpdateNote(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Note, error) {
	if !IsValidID(id) {
		return models.Note{}, ErrInvalidID
	}

	updates := make(map[string]interface{})

	if raw, present := updatedData["title"]; present {
		title, ok := raw.(string)
		if !ok || title == "" {
			return models.Note{}, fmt.Errorf("%w: title", ErrMissingField)
		}
		updates["title"] = title
	}

	if raw, present := updatedData["content"]; present {
		content, ok := raw.(string)
		if !ok {
			return models.Note{}, fmt.Errorf("%w: content must be a string", ErrValidation)
		}
		updates["content"] = content
	}

	var folderID string
	if raw, present := updatedData["folder_id"]; present {
		if raw == nil {
			// JSON null clears the folder assignment
			updates["folder_id"] = nil
		} else {
			fid, ok := raw.(string)
			if !ok || fid == "" {
				return models.Note{}, fmt.Errorf("%w: folder_id", ErrInvalidReference)
			}
			folderID = fid
			updates["folder_id"] = fid
		}
	}

	tagIDs, err := tagIDsFromPayload(updatedData)
	if err != nil {
		return models.Note{}, err
	}

	resolvedTags, err := validateNoteReferences(db, folderID, tagIDs, userID)
	if err != nil {
		return models.Note{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	var note models.Note
	if err := tx.First(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	if len(updates) > 0 {
		if err := tx.Model(&note).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Note{}, err
		}
	}

	if tagIDs != nil {
		if err := tx.Model(&note).Association("Tags").Replace(&resolvedTags); err != nil {
			tx.Rollback()
			return models.Note{}, err
		}
		note.Tags = resolvedTags
	}

	event, err := models.NewEvent(
		"note.updated",
		"note",
		userID,
		map[string]interface{}{
			"note_id": note.ID.String(),
			"user_id": note.UserID.String(),
			"title":   note.Title,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) DeleteNote(db *database.Database, userID uuid.UUID, id string) error {
	if !IsValidID(id) {
		return ErrInvalidID
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// The join table carries no cascade constraint, so detach first.
	if err := tx.Exec(`DELETE FROM note_tags WHERE note_id = ?`, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Note{})
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNoteNotFound
	}

	event, err := models.NewEvent(
		"note.deleted",
		"note",
		userID,
		map[string]interface{}{
			"note_id": id,
			"user_id": userID.String(),
		},
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetNotes lists the caller's notes, most recently updated first. Supports a
// case-insensitive search across title and content plus exact folder and tag
// filters.
func (s *NoteService) GetNotes(db *database.Database, userID uuid.UUID, params map[string]interface{}) ([]models.Note, error) {
	query := db.DB.Preload("Tags").Where("notes.user_id = ?", userID)

	if searchTerm, ok := params["search_term"].(string); ok && searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	if folderID, ok := params["folder_id"].(string); ok && folderID != "" {
		if !IsValidID(folderID) {
			return nil, ErrInvalidID
		}
		query = query.Where("folder_id = ?", folderID)
	}

	if tagID, ok := params["tag_id"].(string); ok && tagID != "" {
		if !IsValidID(tagID) {
			return nil, ErrInvalidID
		}
		query = query.
			Joins("JOIN note_tags ON note_tags.note_id = notes.id").
			Where("note_tags.tag_id = ?", tagID)
	}

	var notes []models.Note
	if err := query.Order("updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

var NoteServiceInstance NoteServiceInterface = &NoteService{}

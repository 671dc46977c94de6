package services

import (
	"fmt"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
)

// IsValidID reports whether value is a well-formed entity identifier. Malformed
// ids are rejected before any store lookup so they surface as a 400-class
// error instead of a driver error.
func IsValidID(value string) bool {
	if value == "" {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// ValidateFolderReference checks that folderID names a folder owned by userID.
// An empty folderID is a no-op. The check is a count, not a fetch, since the
// caller only needs a yes/no.
func ValidateFolderReference(db *database.Database, folderID string, userID uuid.UUID) error {
	if folderID == "" {
		return nil
	}
	if !IsValidID(folderID) {
		return fmt.Errorf("%w: folder_id", ErrInvalidReference)
	}

	var count int64
	if err := db.DB.Model(&models.Folder{}).
		Where("id = ? AND user_id = ?", folderID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: folder_id", ErrInvalidReference)
	}
	return nil
}

// ValidateTagReferences resolves every id in tagIDs to a tag owned by userID
// and returns the resolved tags for association. Repeated ids count as one
// logical reference; the resolved count must equal the distinct requested
// count, so an id owned by another user (or not existing at all) fails.
func ValidateTagReferences(db *database.Database, tagIDs []string, userID uuid.UUID) ([]models.Tag, error) {
	if tagIDs == nil {
		return nil, nil
	}

	seen := make(map[string]bool, len(tagIDs))
	distinct := make([]string, 0, len(tagIDs))
	for _, id := range tagIDs {
		if !IsValidID(id) {
			return nil, fmt.Errorf("%w: tags", ErrInvalidReference)
		}
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	if len(distinct) == 0 {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	if err := db.DB.
		Where("id IN ? AND user_id = ?", distinct, userID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(distinct) {
		return nil, fmt.Errorf("%w: tags", ErrInvalidReference)
	}
	return tags, nil
}

// requireStringField pulls a non-empty string out of a request payload.
func requireStringField(data map[string]interface{}, field string) (string, error) {
	value, ok := data[field].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return value, nil
}

package services

import (
	"errors"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagServiceInterface interface {
	CreateTag(db *database.Database, userID uuid.UUID, tagData map[string]interface{}) (models.Tag, error)
	GetTagById(db *database.Database, userID uuid.UUID, id string) (models.Tag, error)
	UpdateTag(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Tag, error)
	DeleteTag(db *database.Database, userID uuid.UUID, id string) error
	GetTags(db *database.Database, userID uuid.UUID) ([]models.Tag, error)
}

type TagService struct{}

func (s *TagService) CreateTag(db *database.Database, userID uuid.UUID, tagData map[string]interface{}) (models.Tag, error) {
	name, err := requireStringField(tagData, "name")
	if err != nil {
		return models.Tag{}, err
	}

	tag := models.Tag{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Tag{}, tx.Error
	}

	if err := tx.Create(&tag).Error; err != nil {
		tx.Rollback()
		if errors.Is(database.TranslateError(err), database.ErrDuplicateKey) {
			return models.Tag{}, ErrDuplicateName
		}
		return models.Tag{}, err
	}

	event, err := models.NewEvent(
		"tag.created",
		"tag",
		userID,
		map[string]interface{}{
			"tag_id":  tag.ID.String(),
			"user_id": tag.UserID.String(),
			"name":    tag.Name,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	return tag, nil
}

func (s *TagService) GetTagById(db *database.Database, userID uuid.UUID, id string) (models.Tag, error) {
	if !IsValidID(id) {
		return models.Tag{}, ErrInvalidID
	}

	var tag models.Tag
	if err := db.DB.First(&tag, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tag{}, ErrTagNotFound
		}
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Tag, error) {
	if !IsValidID(id) {
		return models.Tag{}, ErrInvalidID
	}

	name, err := requireStringField(updatedData, "name")
	if err != nil {
		return models.Tag{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Tag{}, tx.Error
	}

	var tag models.Tag
	if err := tx.First(&tag, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Tag{}, ErrTagNotFound
		}
		return models.Tag{}, err
	}

	if err := tx.Model(&tag).Update("name", name).Error; err != nil {
		tx.Rollback()
		if errors.Is(database.TranslateError(err), database.ErrDuplicateKey) {
			return models.Tag{}, ErrDuplicateName
		}
		return models.Tag{}, err
	}

	event, err := models.NewEvent(
		"tag.updated",
		"tag",
		userID,
		map[string]interface{}{
			"tag_id":  tag.ID.String(),
			"user_id": tag.UserID.String(),
			"name":    tag.Name,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Tag{}, err
	}

	return tag, nil
}

// DeleteTag removes the tag and detaches it from every owning note's tag set.
func (s *TagService) DeleteTag(db *database.Database, userID uuid.UUID, id string) error {
	if !IsValidID(id) {
		return ErrInvalidID
	}

	if err := deleteTagWithDetach(db, id, userID); err != nil {
		return err
	}

	event, err := models.NewEvent(
		"tag.deleted",
		"tag",
		userID,
		map[string]interface{}{
			"tag_id":  id,
			"user_id": userID.String(),
		},
	)
	if err != nil {
		return err
	}

	return db.DB.Create(event).Error
}

func (s *TagService) GetTags(db *database.Database, userID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	if err := db.DB.
		Where("user_id = ?", userID).
		Order("lower(name)").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

var TagServiceInstance TagServiceInterface = &TagService{}

package services

import (
	"errors"

	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderServiceInterface interface {
	CreateFolder(db *database.Database, userID uuid.UUID, folderData map[string]interface{}) (models.Folder, error)
	GetFolderById(db *database.Database, userID uuid.UUID, id string) (models.Folder, error)
	UpdateFolder(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Folder, error)
	DeleteFolder(db *database.Database, userID uuid.UUID, id string) error
	GetFolders(db *database.Database, userID uuid.UUID) ([]models.Folder, error)
}

type FolderService struct{}

func (s *FolderService) CreateFolder(db *database.Database, userID uuid.UUID, folderData map[string]interface{}) (models.Folder, error) {
	name, err := requireStringField(folderData, "name")
	if err != nil {
		return models.Folder{}, err
	}

	folder := models.Folder{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Folder{}, tx.Error
	}

	if err := tx.Create(&folder).Error; err != nil {
		tx.Rollback()
		if errors.Is(database.TranslateError(err), database.ErrDuplicateKey) {
			return models.Folder{}, ErrDuplicateName
		}
		return models.Folder{}, err
	}

	event, err := models.NewEvent(
		"folder.created",
		"folder",
		userID,
		map[string]interface{}{
			"folder_id": folder.ID.String(),
			"user_id":   folder.UserID.String(),
			"name":      folder.Name,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	return folder, nil
}

func (s *FolderService) GetFolderById(db *database.Database, userID uuid.UUID, id string) (models.Folder, error) {
	if !IsValidID(id) {
		return models.Folder{}, ErrInvalidID
	}

	var folder models.Folder
	if err := db.DB.First(&folder, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, ErrFolderNotFound
		}
		return models.Folder{}, err
	}
	return folder, nil
}

func (s *FolderService) UpdateFolder(db *database.Database, userID uuid.UUID, id string, updatedData map[string]interface{}) (models.Folder, error) {
	if !IsValidID(id) {
		return models.Folder{}, ErrInvalidID
	}

	name, err := requireStringField(updatedData, "name")
	if err != nil {
		return models.Folder{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Folder{}, tx.Error
	}

	var folder models.Folder
	if err := tx.First(&folder, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, ErrFolderNotFound
		}
		return models.Folder{}, err
	}

	if err := tx.Model(&folder).Update("name", name).Error; err != nil {
		tx.Rollback()
		if errors.Is(database.TranslateError(err), database.ErrDuplicateKey) {
			return models.Folder{}, ErrDuplicateName
		}
		return models.Folder{}, err
	}

	event, err := models.NewEvent(
		"folder.updated",
		"folder",
		userID,
		map[string]interface{}{
			"folder_id": folder.ID.String(),
			"user_id":   folder.UserID.String(),
			"name":      folder.Name,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	return folder, nil
}

// DeleteFolder removes the folder and clears folder_id on every note that
// referenced it, both scoped to the owner.
func (s *FolderService) DeleteFolder(db *database.Database, userID uuid.UUID, id string) error {
	if !IsValidID(id) {
		return ErrInvalidID
	}

	if err := deleteFolderWithDetach(db, id, userID); err != nil {
		return err
	}

	event, err := models.NewEvent(
		"folder.deleted",
		"folder",
		userID,
		map[string]interface{}{
			"folder_id": id,
			"user_id":   userID.String(),
		},
	)
	if err != nil {
		return err
	}

	return db.DB.Create(event).Error
}

func (s *FolderService) GetFolders(db *database.Database, userID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	if err := db.DB.
		Where("user_id = ?", userID).
		Order("lower(name)").
		Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

var FolderServiceInstance FolderServiceInterface = &FolderService{}

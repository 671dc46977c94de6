package services

import (
	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Cascade issues a delete together with the note updates that detach the
// deleted entity. The two halves are independent, so they run concurrently
// and are joined before responding. There is no compensating rollback: if the
// detach half fails after the delete succeeded, the error propagates and the
// dangling references stay until the next write.

func deleteFolderWithDetach(db *database.Database, id string, userID uuid.UUID) error {
	var deleted int64
	g := new(errgroup.Group)

	g.Go(func() error {
		result := db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Folder{})
		deleted = result.RowsAffected
		return result.Error
	})

	g.Go(func() error {
		return db.DB.Model(&models.Note{}).
			Where("folder_id = ? AND user_id = ?", id, userID).
			Update("folder_id", nil).Error
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if deleted == 0 {
		return ErrFolderNotFound
	}
	return nil
}

func deleteTagWithDetach(db *database.Database, id string, userID uuid.UUID) error {
	var deleted int64
	g := new(errgroup.Group)

	g.Go(func() error {
		result := db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Tag{})
		deleted = result.RowsAffected
		return result.Error
	})

	g.Go(func() error {
		// Join rows carry no user_id, so scope through the owning notes to
		// avoid touching another user's associations.
		return db.DB.Exec(
			`DELETE FROM note_tags USING notes
			 WHERE note_tags.note_id = notes.id AND note_tags.tag_id = ? AND notes.user_id = ?`,
			id, userID,
		).Error
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTagNotFound
	}
	return nil
}

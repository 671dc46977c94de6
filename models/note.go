package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Note belongs to one user, optionally one folder, and any number of tags.
// FolderID and the tag set are weak references: validated at write time,
// no foreign key constraints at the storage layer.
type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	FolderID  *uuid.UUID `gorm:"type:uuid;index" json:"folder_id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `json:"content"`
	Tags      []Tag      `gorm:"many2many:note_tags" json:"tags"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

func (n *Note) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Note) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

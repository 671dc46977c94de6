package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tag is a per-user label. Notes reference tags through the note_tags join
// table; the tag side carries no back-reference to keep payloads flat.
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (t *Tag) FromJSON(data []byte) error {
	return json.Unmarshal(data, t)
}

func (t *Tag) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

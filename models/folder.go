package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Folder groups notes for a single user. Name uniqueness is per user and
// case-insensitive, enforced by an expression index created in migrations.
type Folder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (f *Folder) FromJSON(data []byte) error {
	return json.Unmarshal(data, f)
}

func (f *Folder) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account owner of folders, notes and tags. The password hash and
// timestamps never leave the API, so only id, username and fullname carry
// json tags that serialize.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	FullName     string    `json:"fullname"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

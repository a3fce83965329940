package model

import "time"

// User represents a registered user and their public profile.
// Username and email carry unique indexes; uniqueness under concurrent
// signups is enforced by the database, not by application checks.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DisplayName  string    `json:"display_name" gorm:"size:255"`
	Bio          string    `json:"bio" gorm:"size:500"`
	AvatarURL    string    `json:"avatar_url" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

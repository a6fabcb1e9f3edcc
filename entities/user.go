package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is an account in the identity boundary. The prediction pipeline never
// touches users directly; it only receives the id of the authenticated one.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	ResetToken   string `gorm:"index" json:"-"`
	CreatedAt    string `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.CreatedAt = time.Now().Format(time.RFC3339)
	return
}

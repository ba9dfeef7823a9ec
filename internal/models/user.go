// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"size:100;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);default:'client'"`

	// Relationships
	Orders  []Order         `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Reviews []Review        `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Wishes  []WishlistEntry `json:"wishes,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

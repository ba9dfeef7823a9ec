// internal/models/contact.go
package models

import "time"

type ContactMessage struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Phone   string `json:"phone" gorm:"size:30"`
	Subject string `json:"subject" gorm:"size:255;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}

type NewsletterSubscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}

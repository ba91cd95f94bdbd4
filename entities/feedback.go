package entities

import (
	"github.com/google/uuid"
)

type Feedback struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Subject string    `json:"subject"`
	Message string    `gorm:"type:text" json:"message"`
	Page    string    `json:"page,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

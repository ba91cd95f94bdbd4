package entities

import (
	"github.com/google/uuid"
)

type Household struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Users []*User `gorm:"foreignKey:HouseholdID" json:"users,omitempty"`
	Timestamp
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Name        string    `json:"name"`
	Password    string    `json:"-"`
	Role        string    `json:"role"` // "member", "admin"
	GoogleSub   string    `gorm:"index" json:"-"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

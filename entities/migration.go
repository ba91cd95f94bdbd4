package entities

import (
	"time"
)

type SchemaMigration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"uniqueIndex" json:"filename"`
	AppliedAt time.Time `gorm:"type:timestamp" json:"applied_at"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID   uuid.UUID `json:"household_id"`
	Title         string    `json:"title"`
	Public        bool      `json:"public"`
	ImageFilename string    `json:"image_filename,omitempty"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Recipes   []*Recipe  `gorm:"many2many:collection_recipes" json:"recipes,omitempty"`
	Timestamp
}

type CollectionRecipe struct {
	CollectionID uuid.UUID `gorm:"primaryKey" json:"collection_id"`
	RecipeID     uuid.UUID `gorm:"primaryKey" json:"recipe_id"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`
}

type CollectionSubscription struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID  uuid.UUID `gorm:"index:idx_subscription_household_collection,unique" json:"household_id"`
	CollectionID uuid.UUID `gorm:"index:idx_subscription_household_collection,unique" json:"collection_id"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	Household  *Household  `gorm:"foreignKey:HouseholdID"`
	Collection *Collection `gorm:"foreignKey:CollectionID"`
}

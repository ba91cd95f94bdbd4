package entities

import (
	"github.com/google/uuid"
)

type Plan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `gorm:"index:idx_plan_household_week" json:"household_id"`
	Week        int       `gorm:"index:idx_plan_household_week" json:"week"`
	Year        int       `gorm:"index:idx_plan_household_week" json:"year"`
	RecipeID    uuid.UUID `json:"recipe_id"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Recipe    *Recipe    `gorm:"foreignKey:RecipeID"`
	Timestamp
}

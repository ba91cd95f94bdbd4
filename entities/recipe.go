package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID  `json:"household_id"`
	Name            string     `json:"name"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Serves          int        `json:"serves"`
	Public          bool       `json:"public"`
	SeasonID        *uuid.UUID `json:"season_id,omitempty"`
	PrimaryTypeID   *uuid.UUID `json:"primary_type_id,omitempty"`   // protein
	SecondaryTypeID *uuid.UUID `json:"secondary_type_id,omitempty"` // carb
	ImageFilename   string     `json:"image_filename,omitempty"`
	PdfFilename     string     `json:"pdf_filename,omitempty"`

	Household     *Household          `gorm:"foreignKey:HouseholdID"`
	Season        *Season             `gorm:"foreignKey:SeasonID"`
	PrimaryType   *TypeProtein        `gorm:"foreignKey:PrimaryTypeID"`
	SecondaryType *TypeCarb           `gorm:"foreignKey:SecondaryTypeID"`
	Ingredients   []*RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID      uuid.UUID  `gorm:"index" json:"recipe_id"`
	IngredientID  uuid.UUID  `json:"ingredient_id"`
	Quantity4     float64    `json:"quantity4"` // serves four
	Quantity2     float64    `json:"quantity2"` // serves two
	MeasurementID *uuid.UUID `json:"measurement_id,omitempty"`
	PreparationID *uuid.UUID `json:"preparation_id,omitempty"`
	SortOrder     int        `json:"sort_order"`

	Recipe      *Recipe      `gorm:"foreignKey:RecipeID"`
	Ingredient  *Ingredient  `gorm:"foreignKey:IngredientID"`
	Measurement *Measurement `gorm:"foreignKey:MeasurementID"`
	Preparation *Preparation `gorm:"foreignKey:PreparationID"`
}

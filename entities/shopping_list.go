package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID  uuid.UUID  `gorm:"index:idx_shopping_household_week" json:"household_id"`
	Week         int        `gorm:"index:idx_shopping_household_week" json:"week"`
	Year         int        `gorm:"index:idx_shopping_household_week" json:"year"`
	IngredientID *uuid.UUID `json:"ingredient_id,omitempty"` // nil for free-form items
	Name         string     `json:"name"`
	Quantity     string     `json:"quantity,omitempty"`
	Cost         float64    `json:"cost"`
	StockCode    string     `json:"stock_code,omitempty"`
	Purchased    bool       `json:"purchased"`
	Fresh        bool       `json:"fresh"`
	SortOrder    int        `json:"sort_order"`

	Household  *Household  `gorm:"foreignKey:HouseholdID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}

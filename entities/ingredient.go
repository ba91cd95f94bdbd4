package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID           uuid.UUID  `json:"household_id"`
	Name                  string     `json:"name"`
	Fresh                 bool       `json:"fresh"`
	Cost                  float64    `json:"cost"`
	StockCode             string     `json:"stock_code,omitempty"`
	Public                bool       `json:"public"`
	CategorySupermarketID *uuid.UUID `json:"category_supermarket_id,omitempty"`
	CategoryPantryID      *uuid.UUID `json:"category_pantry_id,omitempty"`

	Household           *Household           `gorm:"foreignKey:HouseholdID"`
	CategorySupermarket *CategorySupermarket `gorm:"foreignKey:CategorySupermarketID"`
	CategoryPantry      *CategoryPantry      `gorm:"foreignKey:CategoryPantryID"`
	Timestamp
}

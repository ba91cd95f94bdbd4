package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetLookups       = "success get lookup values"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetLookups       = "failed to get lookup values"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientNotOwned = errors.New("ingredient not owned by this household")
	ErrIngredientInUse    = errors.New("ingredient is used by one or more recipes")
)

type (
	CreateIngredientRequest struct {
		Name                  string  `json:"name" validate:"required,min=2"`
		Fresh                 bool    `json:"fresh"`
		Cost                  float64 `json:"cost" validate:"gte=0"`
		StockCode             string  `json:"stock_code"`
		Public                bool    `json:"public"`
		CategorySupermarketID string  `json:"category_supermarket_id" validate:"omitempty,uuid"`
		CategoryPantryID      string  `json:"category_pantry_id" validate:"omitempty,uuid"`
	}

	UpdateIngredientRequest struct {
		Name                  string   `json:"name" validate:"omitempty,min=2"`
		Fresh                 *bool    `json:"fresh"`
		Cost                  *float64 `json:"cost" validate:"omitempty,gte=0"`
		StockCode             *string  `json:"stock_code"`
		Public                *bool    `json:"public"`
		CategorySupermarketID string   `json:"category_supermarket_id" validate:"omitempty,uuid"`
		CategoryPantryID      string   `json:"category_pantry_id" validate:"omitempty,uuid"`
	}

	IngredientResponse struct {
		ID                    string    `json:"id"`
		HouseholdID           string    `json:"household_id"`
		Name                  string    `json:"name"`
		Fresh                 bool      `json:"fresh"`
		Cost                  float64   `json:"cost"`
		StockCode             string    `json:"stock_code,omitempty"`
		Public                bool      `json:"public"`
		CategorySupermarketID string    `json:"category_supermarket_id,omitempty"`
		CategoryPantryID      string    `json:"category_pantry_id,omitempty"`
		Owned                 bool      `json:"owned"`
		CreatedAt             time.Time `json:"created_at"`
	}

	LookupValue struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	CategoryResponse struct {
		Pantry      []LookupValue `json:"pantry"`
		Supermarket []LookupValue `json:"supermarket"`
	}
)

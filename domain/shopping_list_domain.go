package domain

import (
	"errors"
)

var (
	MessageSuccessGetShoppingList  = "success get shopping list"
	MessageSuccessGenerateList     = "shopping list generated successfully"
	MessageSuccessUpdateListItem   = "shopping list item updated successfully"
	MessageSuccessAddListItem      = "shopping list item added successfully"
	MessageSuccessDeleteListItem   = "shopping list item deleted successfully"

	MessageFailedGetShoppingList = "failed to get shopping list"
	MessageFailedGenerateList    = "failed to generate shopping list"
	MessageFailedUpdateListItem  = "failed to update shopping list item"
	MessageFailedAddListItem     = "failed to add shopping list item"
	MessageFailedDeleteListItem  = "failed to delete shopping list item"

	ErrListItemNotFound = errors.New("shopping list item not found")
	ErrListItemNotOwned = errors.New("shopping list item not owned by this household")
	ErrNoPlannedRecipes = errors.New("no recipes planned for this week")
)

type (
	UpdateListItemRequest struct {
		Purchased *bool    `json:"purchased"`
		Cost      *float64 `json:"cost" validate:"omitempty,gte=0"`
		Quantity  *string  `json:"quantity"`
	}

	AddListItemRequest struct {
		Name     string  `json:"name" validate:"required,min=1"`
		Quantity string  `json:"quantity"`
		Cost     float64 `json:"cost" validate:"gte=0"`
		Fresh    bool    `json:"fresh"`
	}

	ShoppingListItemResponse struct {
		ID           string  `json:"id"`
		IngredientID string  `json:"ingredient_id,omitempty"`
		Name         string  `json:"name"`
		Quantity     string  `json:"quantity,omitempty"`
		Cost         float64 `json:"cost"`
		StockCode    string  `json:"stock_code,omitempty"`
		Purchased    bool    `json:"purchased"`
		Fresh        bool    `json:"fresh"`
		SortOrder    int     `json:"sort_order"`
	}

	ShoppingListResponse struct {
		Week      int                        `json:"week"`
		Year      int                        `json:"year"`
		Items     []ShoppingListItemResponse `json:"items"`
		TotalCost float64                    `json:"total_cost"`
	}
)

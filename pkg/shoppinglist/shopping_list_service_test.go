package shoppinglist

import (
	"family-foodie/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(ingredientID uuid.UUID, name string, fresh bool, quantity float64, unit string) *entities.RecipeIngredient {
	ri := &entities.RecipeIngredient{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		Quantity4:    quantity,
		Ingredient: &entities.Ingredient{
			ID:    ingredientID,
			Name:  name,
			Fresh: fresh,
		},
	}
	if unit != "" {
		ri.Measurement = &entities.Measurement{Name: unit}
	}
	return ri
}

func TestAggregateLinesSumsDuplicateIngredients(t *testing.T) {
	onion := uuid.New()

	items := aggregateLines([]*entities.RecipeIngredient{
		line(onion, "Onion", true, 1, "whole"),
		line(onion, "Onion", true, 2, "whole"),
	}, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "Onion", items[0].Name)
	assert.Equal(t, "3 whole", items[0].Quantity)
	assert.Equal(t, onion, *items[0].IngredientID)
}

func TestAggregateLinesSkipsPurchasedIngredients(t *testing.T) {
	onion := uuid.New()
	rice := uuid.New()

	items := aggregateLines([]*entities.RecipeIngredient{
		line(onion, "Onion", true, 1, ""),
		line(rice, "Rice", false, 500, "g"),
	}, map[uuid.UUID]bool{onion: true})

	require.Len(t, items, 1)
	assert.Equal(t, "Rice", items[0].Name)
}

func TestAggregateLinesFreshSortsFirst(t *testing.T) {
	items := aggregateLines([]*entities.RecipeIngredient{
		line(uuid.New(), "Rice", false, 500, "g"),
		line(uuid.New(), "Pasta", false, 400, "g"),
		line(uuid.New(), "Spinach", true, 100, "g"),
		line(uuid.New(), "Carrot", true, 3, ""),
	}, nil)

	require.Len(t, items, 4)
	assert.Equal(t, "Carrot", items[0].Name)
	assert.Equal(t, "Spinach", items[1].Name)
	assert.Equal(t, "Pasta", items[2].Name)
	assert.Equal(t, "Rice", items[3].Name)
	for i, item := range items {
		assert.Equal(t, i, item.SortOrder)
	}
}

func TestAggregateLinesSkipsLinesWithoutIngredient(t *testing.T) {
	broken := &entities.RecipeIngredient{ID: uuid.New(), IngredientID: uuid.New(), Quantity4: 1}

	items := aggregateLines([]*entities.RecipeIngredient{broken}, nil)
	assert.Empty(t, items)
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "", formatQuantity(0, "g"))
	assert.Equal(t, "3", formatQuantity(3, ""))
	assert.Equal(t, "2.5 tbsp", formatQuantity(2.5, "tbsp"))
}

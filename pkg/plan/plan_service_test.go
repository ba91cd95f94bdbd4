package plan

import (
	"family-foodie/entities"
	"family-foodie/pkg/recipe"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggestionRepository struct {
	recipe.RecipeRepository
	visible []*entities.Recipe
}

func (s *stubSuggestionRepository) GetAllVisibleRecipes(context.Context, string) ([]*entities.Recipe, error) {
	return s.visible, nil
}

func typedRecipe(primary, secondary *uuid.UUID) *entities.Recipe {
	return &entities.Recipe{
		ID:              uuid.New(),
		HouseholdID:     uuid.New(),
		PrimaryTypeID:   primary,
		SecondaryTypeID: secondary,
	}
}

func TestPickConflictFreeSkipsRepeatedTypes(t *testing.T) {
	chicken := uuid.New()
	beef := uuid.New()
	rice := uuid.New()
	pasta := uuid.New()

	first := typedRecipe(&chicken, &rice)
	sameProtein := typedRecipe(&chicken, &pasta)
	sameCarb := typedRecipe(&beef, &rice)
	clean := typedRecipe(&beef, &pasta)

	picked := pickConflictFree([]*entities.Recipe{first, sameProtein, sameCarb, clean}, 4)

	assert.Len(t, picked, 2)
	assert.Equal(t, first.ID, picked[0].ID)
	assert.Equal(t, clean.ID, picked[1].ID)
}

func TestPickConflictFreeHonorsCount(t *testing.T) {
	recipes := make([]*entities.Recipe, 0, 10)
	for i := 0; i < 10; i++ {
		protein := uuid.New()
		carb := uuid.New()
		recipes = append(recipes, typedRecipe(&protein, &carb))
	}

	picked := pickConflictFree(recipes, 3)
	assert.Len(t, picked, 3)
}

func TestPickConflictFreeUntypedRecipesNeverConflict(t *testing.T) {
	recipes := []*entities.Recipe{
		typedRecipe(nil, nil),
		typedRecipe(nil, nil),
		typedRecipe(nil, nil),
	}

	picked := pickConflictFree(recipes, 3)
	assert.Len(t, picked, 3)
}

func TestSuggestRecipesFillsSetFromUntypedRecipes(t *testing.T) {
	repo := &stubSuggestionRepository{visible: []*entities.Recipe{
		typedRecipe(nil, nil),
		typedRecipe(nil, nil),
		typedRecipe(nil, nil),
	}}
	service := NewPlanService(nil, repo)

	response, err := service.SuggestRecipes(context.Background(), uuid.New().String(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, response.Count)
	assert.Len(t, response.Recipes, 3)
}

func TestPickConflictFreeEmptyInput(t *testing.T) {
	picked := pickConflictFree(nil, 7)
	assert.Empty(t, picked)
}

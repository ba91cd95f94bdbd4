package domain

import (
	"errors"
)

var (
	MessageSuccessGetPlan     = "success get plan"
	MessageSuccessSavePlan    = "plan saved successfully"
	MessageSuccessSuggestPlan = "success get suggested recipes"

	MessageFailedGetPlan     = "failed to get plan"
	MessageFailedSavePlan    = "failed to save plan"
	MessageFailedSuggestPlan = "failed to get suggested recipes"

	ErrInvalidWeek          = errors.New("week must be between 1 and 53")
	ErrInvalidYear          = errors.New("invalid year")
	ErrPlannedRecipeUnknown = errors.New("planned recipe is not visible to this household")
)

type (
	SavePlanRequest struct {
		Week      int      `json:"week" validate:"required,min=1,max=53"`
		Year      int      `json:"year" validate:"required,min=2000"`
		RecipeIDs []string `json:"recipe_ids" validate:"dive,uuid"`
	}

	PlanResponse struct {
		Week    int              `json:"week"`
		Year    int              `json:"year"`
		Recipes []RecipeResponse `json:"recipes"`
	}

	SuggestResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Count   int              `json:"count"`
	}
)

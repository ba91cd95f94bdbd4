package plan

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"family-foodie/pkg/recipe"
	"context"
	"math/rand"

	"github.com/google/uuid"
)

type (
	PlanService interface {
		GetPlan(ctx context.Context, householdID string, week, year int) (domain.PlanResponse, error)
		SavePlan(ctx context.Context, req domain.SavePlanRequest, householdID string) error
		SuggestRecipes(ctx context.Context, householdID string, count int) (domain.SuggestResponse, error)
	}

	planService struct {
		planRepository   PlanRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewPlanService(planRepository PlanRepository, recipeRepository recipe.RecipeRepository) PlanService {
	return &planService{
		planRepository:   planRepository,
		recipeRepository: recipeRepository,
	}
}

func toPlanRecipeResponse(item *entities.Recipe, householdID string) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              item.ID.String(),
		HouseholdID:     item.HouseholdID.String(),
		Name:            item.Name,
		Description:     item.Description,
		PrepTimeMinutes: item.PrepTimeMinutes,
		CookTimeMinutes: item.CookTimeMinutes,
		Serves:          item.Serves,
		Public:          item.Public,
		ImageFilename:   item.ImageFilename,
		PdfFilename:     item.PdfFilename,
		Owned:           item.HouseholdID.String() == householdID,
		CreatedAt:       item.CreatedAt,
	}
	if item.SeasonID != nil {
		res.SeasonID = item.SeasonID.String()
	}
	if item.PrimaryTypeID != nil {
		res.PrimaryTypeID = item.PrimaryTypeID.String()
	}
	if item.SecondaryTypeID != nil {
		res.SecondaryTypeID = item.SecondaryTypeID.String()
	}
	return res
}

func (s *planService) GetPlan(ctx context.Context, householdID string, week, year int) (domain.PlanResponse, error) {
	if week < 1 || week > 53 {
		return domain.PlanResponse{}, domain.ErrInvalidWeek
	}

	plans, err := s.planRepository.GetPlan(ctx, householdID, week, year)
	if err != nil {
		return domain.PlanResponse{}, err
	}

	response := domain.PlanResponse{
		Week:    week,
		Year:    year,
		Recipes: make([]domain.RecipeResponse, 0, len(plans)),
	}
	for _, item := range plans {
		if item.Recipe == nil {
			continue
		}
		response.Recipes = append(response.Recipes, toPlanRecipeResponse(item.Recipe, householdID))
	}
	return response, nil
}

func (s *planService) SavePlan(ctx context.Context, req domain.SavePlanRequest, householdID string) error {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipeIDs := make([]uuid.UUID, 0, len(req.RecipeIDs))
	for _, id := range req.RecipeIDs {
		visible, err := s.recipeRepository.IsRecipeVisible(ctx, id, householdID)
		if err != nil {
			return err
		}
		if !visible {
			return domain.ErrPlannedRecipeUnknown
		}

		recipeID, err := uuid.Parse(id)
		if err != nil {
			return domain.ErrParseUUID
		}
		recipeIDs = append(recipeIDs, recipeID)
	}

	return s.planRepository.ReplacePlan(ctx, householdUUID, req.Week, req.Year, recipeIDs)
}

// SuggestRecipes shuffles the visible recipe set and greedily picks recipes
// whose protein and carb types have not been used yet in the suggestion, so
// one generated set never repeats a primary or secondary ingredient type.
func (s *planService) SuggestRecipes(ctx context.Context, householdID string, count int) (domain.SuggestResponse, error) {
	recipes, err := s.recipeRepository.GetAllVisibleRecipes(ctx, householdID)
	if err != nil {
		return domain.SuggestResponse{}, err
	}

	shuffled := make([]*entities.Recipe, len(recipes))
	copy(shuffled, recipes)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	picked := pickConflictFree(shuffled, count)

	response := domain.SuggestResponse{
		Recipes: make([]domain.RecipeResponse, 0, len(picked)),
		Count:   len(picked),
	}
	for _, item := range picked {
		response.Recipes = append(response.Recipes, toPlanRecipeResponse(item, householdID))
	}
	return response, nil
}

// pickConflictFree walks an already-shuffled slice and keeps recipes whose
// primary and secondary types are both unused so far. May return fewer than
// count when conflicts exhaust the candidates.
func pickConflictFree(recipes []*entities.Recipe, count int) []*entities.Recipe {
	used := make(map[uuid.UUID]bool)
	picked := make([]*entities.Recipe, 0, count)

	for _, item := range recipes {
		if len(picked) >= count {
			break
		}
		if item.PrimaryTypeID != nil && used[*item.PrimaryTypeID] {
			continue
		}
		if item.SecondaryTypeID != nil && used[*item.SecondaryTypeID] {
			continue
		}

		picked = append(picked, item)
		if item.PrimaryTypeID != nil {
			used[*item.PrimaryTypeID] = true
		}
		if item.SecondaryTypeID != nil {
			used[*item.SecondaryTypeID] = true
		}
	}
	return picked
}

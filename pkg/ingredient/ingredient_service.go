package ingredient

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, householdID string, search string, page, limit int) ([]domain.IngredientResponse, int64, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, householdID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, householdID string) error
		DeleteIngredient(ctx context.Context, id string, householdID string) error

		GetMeasurements(ctx context.Context) ([]domain.LookupValue, error)
		GetPreparations(ctx context.Context) ([]domain.LookupValue, error)
		GetSeasons(ctx context.Context) ([]domain.LookupValue, error)
		GetRecipeTypes(ctx context.Context) (map[string][]domain.LookupValue, error)
		GetCategories(ctx context.Context) (domain.CategoryResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func toIngredientResponse(ingredient *entities.Ingredient, householdID string) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:          ingredient.ID.String(),
		HouseholdID: ingredient.HouseholdID.String(),
		Name:        ingredient.Name,
		Fresh:       ingredient.Fresh,
		Cost:        ingredient.Cost,
		StockCode:   ingredient.StockCode,
		Public:      ingredient.Public,
		Owned:       ingredient.HouseholdID.String() == householdID,
		CreatedAt:   ingredient.CreatedAt,
	}
	if ingredient.CategorySupermarketID != nil {
		res.CategorySupermarketID = ingredient.CategorySupermarketID.String()
	}
	if ingredient.CategoryPantryID != nil {
		res.CategoryPantryID = ingredient.CategoryPantryID.String()
	}
	return res
}

func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return &id, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, householdID string, search string, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.ingredientRepository.GetVisibleIngredients(ctx, householdID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient, householdID))
	}
	return response, count, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, householdID string) (domain.IngredientResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	supermarketID, err := parseOptionalUUID(req.CategorySupermarketID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	pantryID, err := parseOptionalUUID(req.CategoryPantryID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		ID:                    uuid.New(),
		HouseholdID:           householdUUID,
		Name:                  req.Name,
		Fresh:                 req.Fresh,
		Cost:                  req.Cost,
		StockCode:             req.StockCode,
		Public:                req.Public,
		CategorySupermarketID: supermarketID,
		CategoryPantryID:      pantryID,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient, householdID), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, householdID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if ingredient.HouseholdID.String() != householdID {
		return domain.ErrIngredientNotOwned
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.Fresh != nil {
		ingredient.Fresh = *req.Fresh
	}
	if req.Cost != nil {
		ingredient.Cost = *req.Cost
	}
	if req.StockCode != nil {
		ingredient.StockCode = *req.StockCode
	}
	if req.Public != nil {
		ingredient.Public = *req.Public
	}
	if req.CategorySupermarketID != "" {
		supermarketID, err := parseOptionalUUID(req.CategorySupermarketID)
		if err != nil {
			return err
		}
		ingredient.CategorySupermarketID = supermarketID
	}
	if req.CategoryPantryID != "" {
		pantryID, err := parseOptionalUUID(req.CategoryPantryID)
		if err != nil {
			return err
		}
		ingredient.CategoryPantryID = pantryID
	}

	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, householdID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if ingredient.HouseholdID.String() != householdID {
		return domain.ErrIngredientNotOwned
	}

	usage, err := s.ingredientRepository.CountRecipeUsage(ctx, id)
	if err != nil {
		return err
	}
	if usage > 0 {
		return domain.ErrIngredientInUse
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) GetMeasurements(ctx context.Context) ([]domain.LookupValue, error) {
	measurements, err := s.ingredientRepository.GetMeasurements(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]domain.LookupValue, 0, len(measurements))
	for _, m := range measurements {
		values = append(values, domain.LookupValue{ID: m.ID.String(), Name: m.Name})
	}
	return values, nil
}

func (s *ingredientService) GetPreparations(ctx context.Context) ([]domain.LookupValue, error) {
	preparations, err := s.ingredientRepository.GetPreparations(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]domain.LookupValue, 0, len(preparations))
	for _, p := range preparations {
		values = append(values, domain.LookupValue{ID: p.ID.String(), Name: p.Name})
	}
	return values, nil
}

func (s *ingredientService) GetSeasons(ctx context.Context) ([]domain.LookupValue, error) {
	seasons, err := s.ingredientRepository.GetSeasons(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]domain.LookupValue, 0, len(seasons))
	for _, season := range seasons {
		values = append(values, domain.LookupValue{ID: season.ID.String(), Name: season.Name})
	}
	return values, nil
}

func (s *ingredientService) GetRecipeTypes(ctx context.Context) (map[string][]domain.LookupValue, error) {
	proteins, err := s.ingredientRepository.GetTypeProteins(ctx)
	if err != nil {
		return nil, err
	}
	carbs, err := s.ingredientRepository.GetTypeCarbs(ctx)
	if err != nil {
		return nil, err
	}

	proteinValues := make([]domain.LookupValue, 0, len(proteins))
	for _, p := range proteins {
		proteinValues = append(proteinValues, domain.LookupValue{ID: p.ID.String(), Name: p.Name})
	}
	carbValues := make([]domain.LookupValue, 0, len(carbs))
	for _, c := range carbs {
		carbValues = append(carbValues, domain.LookupValue{ID: c.ID.String(), Name: c.Name})
	}

	return map[string][]domain.LookupValue{
		"proteins": proteinValues,
		"carbs":    carbValues,
	}, nil
}

func (s *ingredientService) GetCategories(ctx context.Context) (domain.CategoryResponse, error) {
	pantry, err := s.ingredientRepository.GetPantryCategories(ctx)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	supermarket, err := s.ingredientRepository.GetSupermarketCategories(ctx)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	res := domain.CategoryResponse{}
	for _, c := range pantry {
		res.Pantry = append(res.Pantry, domain.LookupValue{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range supermarket {
		res.Supermarket = append(res.Supermarket, domain.LookupValue{ID: c.ID.String(), Name: c.Name})
	}
	return res, nil
}

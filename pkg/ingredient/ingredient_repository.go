package ingredient

import (
	"family-foodie/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetVisibleIngredients(ctx context.Context, householdID string, search string, page, limit int) ([]*entities.Ingredient, int64, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id string) error
		CountRecipeUsage(ctx context.Context, id string) (int64, error)

		GetMeasurements(ctx context.Context) ([]*entities.Measurement, error)
		GetPreparations(ctx context.Context) ([]*entities.Preparation, error)
		GetSeasons(ctx context.Context) ([]*entities.Season, error)
		GetTypeProteins(ctx context.Context) ([]*entities.TypeProtein, error)
		GetTypeCarbs(ctx context.Context) ([]*entities.TypeCarb, error)
		GetPantryCategories(ctx context.Context) ([]*entities.CategoryPantry, error)
		GetSupermarketCategories(ctx context.Context) ([]*entities.CategorySupermarket, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// visibleScope restricts ingredients to the three access tiers: owned by the
// household, public, or used by a recipe in a collection the household
// subscribes to.
func (r *ingredientRepository) visibleScope(ctx context.Context, householdID string) *gorm.DB {
	subscribed := r.db.
		Table("recipe_ingredients").
		Select("recipe_ingredients.ingredient_id").
		Joins("JOIN collection_recipes ON collection_recipes.recipe_id = recipe_ingredients.recipe_id").
		Joins("JOIN collection_subscriptions ON collection_subscriptions.collection_id = collection_recipes.collection_id").
		Where("collection_subscriptions.household_id = ?", householdID)

	return r.db.WithContext(ctx).
		Where("ingredients.household_id = ? OR ingredients.public = ? OR ingredients.id IN (?)",
			householdID, true, subscribed)
}

func (r *ingredientRepository) GetVisibleIngredients(ctx context.Context, householdID string, search string, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64
	offset := (page - 1) * limit

	query := r.visibleScope(ctx, householdID)
	if search != "" {
		query = query.Where("ingredients.name ILIKE ?", "%"+search+"%")
	}

	if err := query.Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("ingredients.name asc").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}

func (r *ingredientRepository) CountRecipeUsage(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("ingredient_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ingredientRepository) GetMeasurements(ctx context.Context) ([]*entities.Measurement, error) {
	var measurements []*entities.Measurement
	if err := r.db.WithContext(ctx).Order("name asc").Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (r *ingredientRepository) GetPreparations(ctx context.Context) ([]*entities.Preparation, error) {
	var preparations []*entities.Preparation
	if err := r.db.WithContext(ctx).Order("name asc").Find(&preparations).Error; err != nil {
		return nil, err
	}
	return preparations, nil
}

func (r *ingredientRepository) GetSeasons(ctx context.Context) ([]*entities.Season, error) {
	var seasons []*entities.Season
	if err := r.db.WithContext(ctx).Order("name asc").Find(&seasons).Error; err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *ingredientRepository) GetTypeProteins(ctx context.Context) ([]*entities.TypeProtein, error) {
	var types []*entities.TypeProtein
	if err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ingredientRepository) GetTypeCarbs(ctx context.Context) ([]*entities.TypeCarb, error) {
	var types []*entities.TypeCarb
	if err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *ingredientRepository) GetPantryCategories(ctx context.Context) ([]*entities.CategoryPantry, error) {
	var categories []*entities.CategoryPantry
	if err := r.db.WithContext(ctx).Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ingredientRepository) GetSupermarketCategories(ctx context.Context) ([]*entities.CategorySupermarket, error) {
	var categories []*entities.CategorySupermarket
	if err := r.db.WithContext(ctx).Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

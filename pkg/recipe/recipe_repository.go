package recipe

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.RecipeIngredient) error
		AddRecipeToOwnedCollection(ctx context.Context, collectionID, recipeID, householdID uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetVisibleRecipes(ctx context.Context, householdID string, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error)
		GetAllVisibleRecipes(ctx context.Context, householdID string) ([]*entities.Recipe, error)
		IsRecipeVisible(ctx context.Context, id string, householdID string) (bool, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, lines []*entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id string) error
		CloneRecipe(ctx context.Context, recipe *entities.Recipe, householdID uuid.UUID) (*entities.Recipe, error)
		AttachFileLocked(ctx context.Context, id string, apply func(recipe *entities.Recipe) error) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			for _, line := range lines {
				line.RecipeID = recipe.ID
			}
			if err := tx.Create(lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddRecipeToOwnedCollection links a recipe into a collection the household
// owns. Returns gorm.ErrRecordNotFound when the collection does not exist or
// belongs to another household.
func (r *recipeRepository) AddRecipeToOwnedCollection(ctx context.Context, collectionID, recipeID, householdID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Collection{}).
			Where("id = ? AND household_id = ?", collectionID, householdID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&entities.CollectionRecipe{
			CollectionID: collectionID,
			RecipeID:     recipeID,
		}).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.sort_order asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Measurement").
		Preload("Ingredients.Preparation").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// visibleScope restricts recipes to the three access tiers: owned, public,
// or member of a collection the household subscribes to.
func (r *recipeRepository) visibleScope(ctx context.Context, householdID string) *gorm.DB {
	subscribed := r.db.
		Table("collection_recipes").
		Select("collection_recipes.recipe_id").
		Joins("JOIN collection_subscriptions ON collection_subscriptions.collection_id = collection_recipes.collection_id").
		Where("collection_subscriptions.household_id = ?", householdID)

	return r.db.WithContext(ctx).
		Where("recipes.household_id = ? OR recipes.public = ? OR recipes.id IN (?)",
			householdID, true, subscribed)
}

func (r *recipeRepository) GetVisibleRecipes(ctx context.Context, householdID string, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.visibleScope(ctx, householdID)
	if filter.SeasonID != "" {
		query = query.Where("recipes.season_id = ?", filter.SeasonID)
	}
	if filter.PrimaryTypeID != "" {
		query = query.Where("recipes.primary_type_id = ?", filter.PrimaryTypeID)
	}
	if filter.SecondaryTypeID != "" {
		query = query.Where("recipes.secondary_type_id = ?", filter.SecondaryTypeID)
	}
	if filter.Search != "" {
		query = query.Where("recipes.name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("recipes.name asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetAllVisibleRecipes(ctx context.Context, householdID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.visibleScope(ctx, householdID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) IsRecipeVisible(ctx context.Context, id string, householdID string) (bool, error) {
	var count int64
	if err := r.visibleScope(ctx, householdID).
		Model(&entities.Recipe{}).
		Where("recipes.id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, lines []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			for _, line := range lines {
				line.RecipeID = recipeID
			}
			if err := tx.Create(lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

// CloneRecipe copies a recipe and its ingredient lines into another
// household, then retargets that household's collection memberships from the
// original to the clone. Backs copy-on-write edits of shared recipes.
func (r *recipeRepository) CloneRecipe(ctx context.Context, recipe *entities.Recipe, householdID uuid.UUID) (*entities.Recipe, error) {
	clone := &entities.Recipe{
		ID:              uuid.New(),
		HouseholdID:     householdID,
		Name:            recipe.Name,
		Description:     recipe.Description,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Serves:          recipe.Serves,
		Public:          false,
		SeasonID:        recipe.SeasonID,
		PrimaryTypeID:   recipe.PrimaryTypeID,
		SecondaryTypeID: recipe.SecondaryTypeID,
		ImageFilename:   recipe.ImageFilename,
		PdfFilename:     recipe.PdfFilename,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clone).Error; err != nil {
			return err
		}

		var lines []*entities.RecipeIngredient
		if err := tx.Where("recipe_id = ?", recipe.ID).Find(&lines).Error; err != nil {
			return err
		}
		for _, line := range lines {
			line.ID = uuid.New()
			line.RecipeID = clone.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(lines).Error; err != nil {
				return err
			}
		}

		// only memberships in collections the editing household owns move over
		return tx.Model(&entities.CollectionRecipe{}).
			Where("recipe_id = ? AND collection_id IN (?)",
				recipe.ID,
				tx.Table("collections").Select("id").Where("household_id = ?", householdID),
			).
			Update("recipe_id", clone.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return clone, nil
}

// AttachFileLocked applies a mutation to the recipe row while holding a
// FOR UPDATE NOWAIT lock, so a concurrent attach fails fast with the
// database's lock error instead of queueing behind the first writer.
func (r *recipeRepository) AttachFileLocked(ctx context.Context, id string, apply func(recipe *entities.Recipe) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
			Where("id = ?", id).
			First(&recipe).Error; err != nil {
			return err
		}

		if err := apply(&recipe); err != nil {
			return err
		}

		return tx.Save(&recipe).Error
	})
}

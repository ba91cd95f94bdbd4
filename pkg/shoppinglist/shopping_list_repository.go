package shoppinglist

import (
	"family-foodie/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		GetItems(ctx context.Context, householdID string, week, year int) ([]*entities.ShoppingListItem, error)
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		CreateItem(ctx context.Context, item *entities.ShoppingListItem) error
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteItem(ctx context.Context, id string) error
		RegenerateItems(ctx context.Context, householdID uuid.UUID, week, year int, items []*entities.ShoppingListItem) error
		GetPlannedIngredientLines(ctx context.Context, householdID string, week, year int) ([]*entities.RecipeIngredient, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) GetItems(ctx context.Context, householdID string, week, year int) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND week = ? AND year = ?", householdID, week, year).
		Order("sort_order asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) CreateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

// RegenerateItems replaces the week's unpurchased rows in one transaction.
// Rows already marked purchased survive regeneration.
func (r *shoppingListRepository) RegenerateItems(ctx context.Context, householdID uuid.UUID, week, year int, items []*entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ? AND week = ? AND year = ? AND purchased = ?",
			householdID, week, year, false).
			Delete(&entities.ShoppingListItem{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}
		return tx.Create(items).Error
	})
}

func (r *shoppingListRepository) GetPlannedIngredientLines(ctx context.Context, householdID string, week, year int) ([]*entities.RecipeIngredient, error) {
	var lines []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Preload("Measurement").
		Joins("JOIN plans ON plans.recipe_id = recipe_ingredients.recipe_id").
		Where("plans.household_id = ? AND plans.week = ? AND plans.year = ?", householdID, week, year).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

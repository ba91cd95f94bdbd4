package collection

import (
	"family-foodie/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error)
		GetCollectionWithRecipes(ctx context.Context, id string) (*entities.Collection, error)
		GetVisibleCollections(ctx context.Context, householdID string, page, limit int) ([]*entities.Collection, int64, error)
		GetRecipeCounts(ctx context.Context, collectionIDs []uuid.UUID) (map[uuid.UUID]int64, error)
		GetSubscribedCollectionIDs(ctx context.Context, householdID string) (map[uuid.UUID]bool, error)
		UpdateCollection(ctx context.Context, collection *entities.Collection) error
		DeleteCollection(ctx context.Context, id string) error
		Subscribe(ctx context.Context, householdID, collectionID uuid.UUID) error
		Unsubscribe(ctx context.Context, householdID, collectionID string) error
		AddRecipe(ctx context.Context, collectionID, recipeID uuid.UUID) error
		RemoveRecipe(ctx context.Context, collectionID, recipeID string) error
		CloneCollection(ctx context.Context, collection *entities.Collection, householdID uuid.UUID) (*entities.Collection, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionWithRecipes(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipes.name asc")
		}).
		Where("id = ?", id).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetVisibleCollections(ctx context.Context, householdID string, page, limit int) ([]*entities.Collection, int64, error) {
	var collections []*entities.Collection
	var count int64
	offset := (page - 1) * limit

	subscribed := r.db.
		Table("collection_subscriptions").
		Select("collection_subscriptions.collection_id").
		Where("collection_subscriptions.household_id = ?", householdID)

	query := r.db.WithContext(ctx).
		Where("collections.household_id = ? OR collections.public = ? OR collections.id IN (?)",
			householdID, true, subscribed)

	if err := query.Model(&entities.Collection{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("collections.title asc").
		Find(&collections).Error; err != nil {
		return nil, 0, err
	}

	return collections, count, nil
}

func (r *collectionRepository) GetRecipeCounts(ctx context.Context, collectionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(collectionIDs))
	if len(collectionIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CollectionID uuid.UUID
		Total        int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Table("collection_recipes").
		Select("collection_id, count(*) as total").
		Where("collection_id IN ?", collectionIDs).
		Group("collection_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, item := range rows {
		counts[item.CollectionID] = item.Total
	}
	return counts, nil
}

func (r *collectionRepository) GetSubscribedCollectionIDs(ctx context.Context, householdID string) (map[uuid.UUID]bool, error) {
	var subscriptions []*entities.CollectionSubscription
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}

	ids := make(map[uuid.UUID]bool, len(subscriptions))
	for _, sub := range subscriptions {
		ids[sub.CollectionID] = true
	}
	return ids, nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&entities.CollectionRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&entities.CollectionSubscription{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Collection{}).Error
	})
}

func (r *collectionRepository) Subscribe(ctx context.Context, householdID, collectionID uuid.UUID) error {
	var existing entities.CollectionSubscription
	err := r.db.WithContext(ctx).
		Where("household_id = ? AND collection_id = ?", householdID, collectionID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	subscription := entities.CollectionSubscription{
		ID:           uuid.New(),
		HouseholdID:  householdID,
		CollectionID: collectionID,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).Create(&subscription).Error
}

func (r *collectionRepository) Unsubscribe(ctx context.Context, householdID, collectionID string) error {
	return r.db.WithContext(ctx).
		Where("household_id = ? AND collection_id = ?", householdID, collectionID).
		Delete(&entities.CollectionSubscription{}).Error
}

func (r *collectionRepository) AddRecipe(ctx context.Context, collectionID, recipeID uuid.UUID) error {
	var existing entities.CollectionRecipe
	err := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		First(&existing).Error
	if err == nil {
		return gorm.ErrDuplicatedKey
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	membership := entities.CollectionRecipe{
		CollectionID: collectionID,
		RecipeID:     recipeID,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).Create(&membership).Error
}

func (r *collectionRepository) RemoveRecipe(ctx context.Context, collectionID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&entities.CollectionRecipe{}).Error
}

// CloneCollection copies a collection and its recipe memberships into
// another household and drops that household's subscription to the original.
// Backs copy-on-write edits of shared collections.
func (r *collectionRepository) CloneCollection(ctx context.Context, collection *entities.Collection, householdID uuid.UUID) (*entities.Collection, error) {
	clone := &entities.Collection{
		ID:            uuid.New(),
		HouseholdID:   householdID,
		Title:         collection.Title,
		Public:        false,
		ImageFilename: collection.ImageFilename,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(clone).Error; err != nil {
			return err
		}

		var memberships []*entities.CollectionRecipe
		if err := tx.Where("collection_id = ?", collection.ID).Find(&memberships).Error; err != nil {
			return err
		}
		for _, membership := range memberships {
			membership.CollectionID = clone.ID
			membership.CreatedAt = time.Now()
		}
		if len(memberships) > 0 {
			if err := tx.Create(memberships).Error; err != nil {
				return err
			}
		}

		return tx.Where("household_id = ? AND collection_id = ?", householdID, collection.ID).
			Delete(&entities.CollectionSubscription{}).Error
	})
	if err != nil {
		return nil, err
	}

	return clone, nil
}

package plan

import (
	"family-foodie/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		GetPlan(ctx context.Context, householdID string, week, year int) ([]*entities.Plan, error)
		ReplacePlan(ctx context.Context, householdID uuid.UUID, week, year int, recipeIDs []uuid.UUID) error
	}

	planRepository struct {
		db *gorm.DB
	}
)

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetPlan(ctx context.Context, householdID string, week, year int) ([]*entities.Plan, error) {
	var plans []*entities.Plan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("household_id = ? AND week = ? AND year = ?", householdID, week, year).
		Order("created_at asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ReplacePlan swaps the household's week plan in one transaction so a failed
// save never leaves a half-written week.
func (r *planRepository) ReplacePlan(ctx context.Context, householdID uuid.UUID, week, year int, recipeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ? AND week = ? AND year = ?", householdID, week, year).
			Delete(&entities.Plan{}).Error; err != nil {
			return err
		}

		if len(recipeIDs) == 0 {
			return nil
		}

		plans := make([]*entities.Plan, 0, len(recipeIDs))
		for _, recipeID := range recipeIDs {
			plans = append(plans, &entities.Plan{
				ID:          uuid.New(),
				HouseholdID: householdID,
				Week:        week,
				Year:        year,
				RecipeID:    recipeID,
			})
		}
		return tx.Create(plans).Error
	})
}

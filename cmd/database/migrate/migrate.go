package migration

import (
	"family-foodie/entities"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// A Step is one named schema change. Applied steps are recorded in
// schema_migrations so the admin status endpoint can report drift.
type Step struct {
	Name  string
	Apply func(db *gorm.DB) error
}

func Steps() []Step {
	return []Step{
		{Name: "001_households_users.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(&entities.Household{}, &entities.User{})
		}},
		{Name: "002_lookups.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&entities.Measurement{},
				&entities.Preparation{},
				&entities.Season{},
				&entities.TypeProtein{},
				&entities.TypeCarb{},
				&entities.CategoryPantry{},
				&entities.CategorySupermarket{},
			)
		}},
		{Name: "003_ingredients_recipes.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(&entities.Ingredient{}, &entities.Recipe{}, &entities.RecipeIngredient{})
		}},
		{Name: "004_collections.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&entities.Collection{},
				&entities.CollectionRecipe{},
				&entities.CollectionSubscription{},
			)
		}},
		{Name: "005_plans_shopping_lists.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(&entities.Plan{}, &entities.ShoppingListItem{})
		}},
		{Name: "006_feedback.sql", Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(&entities.Feedback{})
		}},
		{Name: "007_seed_lookups.sql", Apply: seedLookups},
	}
}

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.SchemaMigration{}); err != nil {
		log.Fatalf("Error migrating schema_migrations table: %v", err)
		return err
	}

	for _, step := range Steps() {
		var applied int64
		if err := db.Model(&entities.SchemaMigration{}).
			Where("filename = ?", step.Name).
			Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}

		if err := step.Apply(db); err != nil {
			log.Fatalf("Error applying migration %s: %v", step.Name, err)
			return err
		}
		if err := db.Create(&entities.SchemaMigration{
			Filename:  step.Name,
			AppliedAt: time.Now(),
		}).Error; err != nil {
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedLookups(db *gorm.DB) error {
	measurements := []string{"grams", "kilograms", "millilitres", "litres", "cups", "tablespoons", "teaspoons", "items"}
	for _, name := range measurements {
		if err := db.Where(entities.Measurement{Name: name}).FirstOrCreate(&entities.Measurement{Name: name}).Error; err != nil {
			return err
		}
	}

	preparations := []string{"chopped", "diced", "sliced", "grated", "crushed", "whole"}
	for _, name := range preparations {
		if err := db.Where(entities.Preparation{Name: name}).FirstOrCreate(&entities.Preparation{Name: name}).Error; err != nil {
			return err
		}
	}

	seasons := []string{"Summer", "Autumn", "Winter", "Spring", "All year"}
	for _, name := range seasons {
		if err := db.Where(entities.Season{Name: name}).FirstOrCreate(&entities.Season{Name: name}).Error; err != nil {
			return err
		}
	}

	proteins := []string{"Beef", "Chicken", "Pork", "Lamb", "Fish", "Vegetarian"}
	for _, name := range proteins {
		if err := db.Where(entities.TypeProtein{Name: name}).FirstOrCreate(&entities.TypeProtein{Name: name}).Error; err != nil {
			return err
		}
	}

	carbs := []string{"Rice", "Pasta", "Potato", "Bread", "Noodles", "None"}
	for _, name := range carbs {
		if err := db.Where(entities.TypeCarb{Name: name}).FirstOrCreate(&entities.TypeCarb{Name: name}).Error; err != nil {
			return err
		}
	}

	pantry := []string{"Spices", "Baking", "Tins", "Sauces", "Grains"}
	for i, name := range pantry {
		if err := db.Where(entities.CategoryPantry{Name: name}).
			FirstOrCreate(&entities.CategoryPantry{Name: name, SortOrder: i}).Error; err != nil {
			return err
		}
	}

	supermarket := []string{"Fruit & Veg", "Meat", "Dairy", "Bakery", "Frozen", "Pantry"}
	for i, name := range supermarket {
		if err := db.Where(entities.CategorySupermarket{Name: name}).
			FirstOrCreate(&entities.CategorySupermarket{Name: name, SortOrder: i}).Error; err != nil {
			return err
		}
	}

	return nil
}

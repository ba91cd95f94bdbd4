package config

import (
	"family-foodie/internal/api/handlers"
	"family-foodie/internal/api/routes"
	"family-foodie/internal/middleware"
	"family-foodie/internal/utils"
	"family-foodie/internal/utils/storage"
	"family-foodie/pkg/admin"
	"family-foodie/pkg/collection"
	"family-foodie/pkg/feedback"
	"family-foodie/pkg/ingredient"
	"family-foodie/pkg/jwt"
	"family-foodie/pkg/plan"
	"family-foodie/pkg/recipe"
	"family-foodie/pkg/shoppinglist"
	"family-foodie/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         25 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	files, err := storage.NewFileStorage()
	if err != nil {
		return nil, err
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	planRepository := plan.NewPlanRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, files)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository, files)
	planService := plan.NewPlanService(planRepository, recipeRepository)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository)
	adminService := admin.NewAdminService(db)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)
	adminHandler := handlers.NewAdminHandler(adminService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		IngredientHandler:   ingredientHandler,
		CollectionHandler:   collectionHandler,
		PlanHandler:         planHandler,
		ShoppingListHandler: shoppingListHandler,
		FeedbackHandler:     feedbackHandler,
		AdminHandler:        adminHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

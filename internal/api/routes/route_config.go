package routes

import (
	"family-foodie/internal/api/handlers"
	"family-foodie/internal/middleware"
	"family-foodie/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	IngredientHandler   handlers.IngredientHandler
	CollectionHandler   handlers.CollectionHandler
	PlanHandler         handlers.PlanHandler
	ShoppingListHandler handlers.ShoppingListHandler
	FeedbackHandler     handlers.FeedbackHandler
	AdminHandler        handlers.AdminHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Ingredients()
	c.Lookups()
	c.Collections()
	c.Plan()
	c.ShoppingList()
	c.Feedback()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/google", c.UserHandler.GoogleSignIn)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
		recipes.Post("/:id/pdf", c.RecipeHandler.UploadRecipePdf)
		recipes.Post("/:id/pdf/from-image", c.RecipeHandler.ConvertImageToPdf)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Lookups() {
	lookups := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))
	{
		lookups.Get("/measurements", c.IngredientHandler.GetMeasurements)
		lookups.Get("/preparations", c.IngredientHandler.GetPreparations)
		lookups.Get("/seasons", c.IngredientHandler.GetSeasons)
		lookups.Get("/recipe-types", c.IngredientHandler.GetRecipeTypes)
		lookups.Get("/categories", c.IngredientHandler.GetCategories)
	}
}

func (c *Config) Collections() {
	collections := c.App.Group("/api/collections", c.Middleware.AuthMiddleware(c.JWTService))
	{
		collections.Get("", c.CollectionHandler.GetCollections)
		collections.Post("", c.CollectionHandler.CreateCollection)
		collections.Get("/:id", c.CollectionHandler.GetCollectionDetail)
		collections.Put("/:id", c.CollectionHandler.UpdateCollection)
		collections.Delete("/:id", c.CollectionHandler.DeleteCollection)

		collections.Post("/:id/subscribe", c.CollectionHandler.Subscribe)
		collections.Delete("/:id/subscribe", c.CollectionHandler.Unsubscribe)
		collections.Post("/:id/recipes", c.CollectionHandler.AddRecipe)
		collections.Delete("/:id/recipes/:recipeId", c.CollectionHandler.RemoveRecipe)
		collections.Post("/:id/image", c.CollectionHandler.UploadCover)
	}
}

func (c *Config) Plan() {
	plan := c.App.Group("/api/plan", c.Middleware.AuthMiddleware(c.JWTService))
	{
		plan.Post("/save", c.PlanHandler.SavePlan)
		plan.Get("/suggest", c.PlanHandler.SuggestRecipes)
		plan.Get("/:year/:week", c.PlanHandler.GetPlan)
	}
}

func (c *Config) ShoppingList() {
	list := c.App.Group("/api/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	{
		list.Get("/:year/:week", c.ShoppingListHandler.GetShoppingList)
		list.Post("/:year/:week/generate", c.ShoppingListHandler.GenerateShoppingList)
		list.Post("/:year/:week/items", c.ShoppingListHandler.AddItem)
		list.Put("/item/:id", c.ShoppingListHandler.UpdateItem)
		list.Delete("/item/:id", c.ShoppingListHandler.DeleteItem)
	}
}

func (c *Config) Feedback() {
	feedback := c.App.Group("/api/feedback", c.Middleware.AuthMiddleware(c.JWTService))
	{
		feedback.Post("", c.FeedbackHandler.SendFeedback)
		feedback.Get("", c.Middleware.AdminMiddleware(), c.FeedbackHandler.GetFeedbacks)
		feedback.Get("/:id", c.Middleware.AdminMiddleware(), c.FeedbackHandler.GetFeedback)
		feedback.Put("/:id", c.Middleware.AdminMiddleware(), c.FeedbackHandler.UpdateFeedback)
		feedback.Delete("/:id", c.Middleware.AdminMiddleware(), c.FeedbackHandler.DeleteFeedback)
	}
}

func (c *Config) Admin() {
	adminGroup := c.App.Group("/api/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		adminGroup.Get("/users", c.UserHandler.GetUsers)
		adminGroup.Post("/users", c.UserHandler.CreateUser)
		adminGroup.Get("/users/:id", c.UserHandler.GetUser)
		adminGroup.Put("/users/:id", c.UserHandler.UpdateUser)
		adminGroup.Delete("/users/:id", c.UserHandler.DeleteUser)

		adminGroup.Get("/migrations", c.AdminHandler.GetMigrationStatus)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freshkeep/freshkeep-backend/internal/api/handlers"
	"github.com/freshkeep/freshkeep-backend/internal/middleware"
)

type Config struct {
	App              *fiber.App
	FoodHandler      handlers.FoodHandler
	AlertHandler     handlers.AlertHandler
	RecipeHandler    handlers.RecipeHandler
	AssistantHandler handlers.AssistantHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.FoodItems()
	c.Alerts()
	c.Recipes()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)

	// Deletion is two-phase: request first, then confirm or cancel
	foodItems.Delete("/:id", c.FoodHandler.RequestDelete)
	foodItems.Post("/:id/confirm-delete", c.FoodHandler.ConfirmDelete)
	foodItems.Post("/:id/cancel-delete", c.FoodHandler.CancelDelete)

	// Special operations
	foodItems.Post("/identify", c.FoodHandler.IdentifyFood)
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/api/v1/alerts")

	alerts.Get("", c.AlertHandler.GetAlerts)
	alerts.Post("/:id/read", c.AlertHandler.MarkAlertRead)
	alerts.Post("/read-all", c.AlertHandler.MarkAllAlertsRead)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("/shuffle", c.RecipeHandler.ShuffleRecipes)
	recipes.Post("/:id/toggle-save", c.RecipeHandler.ToggleSaveRecipe)
	recipes.Get("/saved", c.RecipeHandler.GetSavedRecipes)
	recipes.Delete("/saved/:id", c.RecipeHandler.UnsaveRecipe)
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant")

	assistant.Post("/chat", c.AssistantHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

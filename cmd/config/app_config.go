package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/internal/api/handlers"
	"github.com/freshkeep/freshkeep-backend/internal/api/routes"
	"github.com/freshkeep/freshkeep-backend/internal/middleware"
	"github.com/freshkeep/freshkeep-backend/internal/scheduler"
	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/internal/utils/storage"
	"github.com/freshkeep/freshkeep-backend/pkg/alert"
	"github.com/freshkeep/freshkeep-backend/pkg/assistant"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
	"github.com/freshkeep/freshkeep-backend/pkg/gemini"
	"github.com/freshkeep/freshkeep-backend/pkg/recipe"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

func NewApp(kv store.KeyValue, appLogger *zap.Logger) (*fiber.App, *scheduler.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
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
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey: utils.GetConfig("GEMINI_API_KEY"),
		Model:  utils.GetConfig("GEMINI_MODEL"),
	}, appLogger.Named("gemini"))

	// Repository
	foodRepository := food.NewFoodRepository(kv)
	readAlertRepository := alert.NewReadAlertRepository(kv)
	savedRecipeRepository := recipe.NewSavedRecipeRepository(kv)

	// Service
	alertService := alert.NewAlertService(foodRepository, readAlertRepository)
	foodService := food.NewFoodService(foodRepository, geminiClient, alertService, appLogger.Named("food"))
	recipeService := recipe.NewRecipeService(geminiClient, savedRecipeRepository, foodRepository, appLogger.Named("recipe"))

	var archiver assistant.ImageArchiver
	if s3 != nil {
		archiver = s3
	}
	assistantService := assistant.NewAssistantService(geminiClient, geminiClient, archiver, foodRepository, appLogger.Named("assistant"))

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, assistantService, validator)
	alertHandler := handlers.NewAlertHandler(alertService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		FoodHandler:      foodHandler,
		AlertHandler:     alertHandler,
		RecipeHandler:    recipeHandler,
		AssistantHandler: assistantHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()

	digestScheduler := scheduler.NewScheduler(foodRepository, appLogger.Named("scheduler"))
	return app, digestScheduler, nil
}

package config

import (
	"Recipe-Share/entities"
	"Recipe-Share/internal/api/handlers"
	"Recipe-Share/internal/api/routes"
	"Recipe-Share/internal/middleware"
	"Recipe-Share/internal/utils"
	"Recipe-Share/internal/utils/storage"
	"Recipe-Share/pkg/recipe"
	"Recipe-Share/pkg/user"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	if err := configurePasswordCost(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})

	// setting up logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	registerRoutes(app, db, s3)
	return app, nil
}

func registerRoutes(app *fiber.App, db *gorm.DB, s3 storage.AwsS3) {
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	userService := user.NewUserService(userRepository, recipeRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
}

func configurePasswordCost() error {
	raw := utils.GetConfig("BCRYPT_COST")
	if raw == "" {
		return nil
	}

	cost, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid BCRYPT_COST %q: %w", raw, err)
	}
	if err := entities.SetPasswordCost(cost); err != nil {
		return err
	}
	log.Infow("bcrypt cost configured", "cost", cost)
	return nil
}

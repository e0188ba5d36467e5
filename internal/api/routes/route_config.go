package routes

import (
	"Recipe-Share/internal/api/handlers"
	"Recipe-Share/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/signup", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/:id", c.UserHandler.GetUser)
		user.Patch("/:id", c.UserHandler.UpdateProfile)
		user.Put("/:id/password", c.UserHandler.ChangePassword)
		user.Post("/:id/avatar", c.UserHandler.UploadAvatar)
		user.Delete("/:id", c.UserHandler.DeleteUser)
	}

	// recipes owned by the user
	{
		user.Get("/:id/recipes", c.RecipeHandler.GetUserRecipes)
		user.Post("/:id/recipes", c.RecipeHandler.CreateRecipe)
		user.Patch("/:id/recipes/:recipe_id", c.RecipeHandler.UpdateRecipe)
		user.Delete("/:id/recipes/:recipe_id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

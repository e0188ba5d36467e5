package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	CreateRecipeRequest struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete" validate:"omitempty,min=0"`
	}

	// UpdateRecipeRequest leaves nil fields untouched.
	UpdateRecipeRequest struct {
		Title             *string `json:"title"`
		Instructions      *string `json:"instructions"`
		MinutesToComplete *int    `json:"minutes_to_complete" validate:"omitempty,min=0"`
	}

	RecipeResponse struct {
		ID                string         `json:"id"`
		Title             string         `json:"title"`
		Instructions      string         `json:"instructions"`
		MinutesToComplete *int           `json:"minutes_to_complete"`
		UserID            string         `json:"user_id"`
		User              *OwnerResponse `json:"user,omitempty"`
		CreatedAt         time.Time      `json:"created_at"`
		UpdatedAt         time.Time      `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int64            `json:"total"`
		Page    int              `json:"page"`
		Limit   int              `json:"limit"`
	}
)

package recipe

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/pkg/user"
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error)
		GetUserRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, userID, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, userID, recipeID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	owner, err := s.userRepository.GetUserByID(ctx, ownerID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := entities.NewRecipe(req.Title, req.Instructions, owner)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.SetMinutesToComplete(req.MinutesToComplete)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	log.Infow("recipe created", "recipe_id", recipe.ID.String(), "user_id", owner.ID.String())
	return recipe.ToResponse(), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipe.ToResponse(), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	recipes, total, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, recipe.ToResponse())
	}

	return domain.RecipeListResponse{
		Recipes: res,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	owner, err := s.userRepository.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipesByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		recipes[i].User = owner
		res = append(res, recipes[i].ToResponse())
	}
	return res, nil
}

// UpdateRecipe applies every field of req through the entity setters. Any
// rejected field aborts the update before the store is touched.
func (s *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.ownedRecipe(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Title != nil {
		if err := recipe.SetTitle(*req.Title); err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	if req.Instructions != nil {
		if err := recipe.SetInstructions(*req.Instructions); err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	if req.MinutesToComplete != nil {
		recipe.SetMinutesToComplete(req.MinutesToComplete)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipe.ToResponse(), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.ownedRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe); err != nil {
		return err
	}

	log.Infow("recipe deleted", "recipe_id", recipe.ID.String(), "user_id", userID)
	return nil
}

func (s *recipeService) ownedRecipe(ctx context.Context, userID, recipeID string) (*entities.Recipe, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != ownerID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

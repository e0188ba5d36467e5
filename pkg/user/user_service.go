package user

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/internal/utils/storage"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error)
		GetUser(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
		UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID string, req domain.DeleteUserRequest) error
	}

	// RecipeFinder loads the recipes owned by a user.
	RecipeFinder interface {
		GetRecipesByUserID(ctx context.Context, userID uuid.UUID) ([]entities.Recipe, error)
	}

	userService struct {
		userRepository UserRepository
		recipeFinder   RecipeFinder
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, recipeFinder RecipeFinder, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		recipeFinder:   recipeFinder,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error) {
	user, err := entities.NewUser(req.Username, req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}
	user.ImageURL = req.ImageURL
	user.Bio = req.Bio

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	log.Infow("user registered", "user_id", user.ID.String(), "username", user.Username)
	return user.ToResponse(), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			entities.CompareDummyPassword(req.Password)
			return domain.UserResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserResponse{}, err
	}

	if !user.Authenticate(req.Password) {
		log.Infow("login rejected", "username", req.Username)
		return domain.UserResponse{}, domain.ErrInvalidCredentials
	}

	return s.withRecipes(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return s.withRecipes(ctx, user)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return s.withRecipes(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	if req.Password == nil {
		return domain.ErrPasswordRequired
	}

	user, err := s.authorizedUser(ctx, userID, req.CurrentPassword)
	if err != nil {
		return err
	}

	if err := user.SetPassword(*req.Password); err != nil {
		return err
	}
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadAvatar(ctx context.Context, userID string, req domain.UploadAvatarRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	previousKey := s.s3.GetObjectKeyFromLink(user.ImageURL)

	objectKey, err := s.s3.UploadFile(ctx, fmt.Sprintf("user-%s", user.ID.String()), req.Image, "avatars", storage.AllowImage...)
	if err != nil {
		return domain.UserResponse{}, err
	}
	user.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// the new object may share the old key when only the content changed
	if previousKey != "" && previousKey != objectKey {
		if err := s.s3.DeleteFile(ctx, previousKey); err != nil {
			log.Warnw("failed to delete previous avatar", "user_id", user.ID.String(), "key", previousKey, "error", err)
		}
	}

	return s.withRecipes(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID string, req domain.DeleteUserRequest) error {
	user, err := s.authorizedUser(ctx, userID, req.CurrentPassword)
	if err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, user); err != nil {
		return err
	}

	if key := s.s3.GetObjectKeyFromLink(user.ImageURL); key != "" {
		if err := s.s3.DeleteFile(ctx, key); err != nil {
			log.Warnw("failed to delete avatar of deleted user", "user_id", user.ID.String(), "key", key, "error", err)
		}
	}

	log.Infow("user deleted", "user_id", user.ID.String())
	return nil
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.userRepository.GetUserByID(ctx, id)
}

// authorizedUser loads the user and checks currentPassword against it.
func (s *userService) authorizedUser(ctx context.Context, userID, currentPassword string) (*entities.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Authenticate(currentPassword) {
		log.Infow("current password rejected", "user_id", user.ID.String())
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) withRecipes(ctx context.Context, user *entities.User) (domain.UserResponse, error) {
	recipes, err := s.recipeFinder.GetRecipesByUserID(ctx, user.ID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	user.Recipes = recipes
	return user.ToResponse(), nil
}

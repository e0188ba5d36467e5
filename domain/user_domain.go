package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetUser        = "success get user"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"
	MessageSuccessDeleteUser     = "user deleted successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedUploadAvatar   = "failed to upload avatar"
	MessageFailedDeleteUser     = "failed to delete user"

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	SignupRequest struct {
		Username string  `json:"username"`
		Password *string `json:"password"`
		ImageURL string  `json:"image_url" validate:"omitempty,url"`
		Bio      string  `json:"bio"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password"`
	}

	UpdateProfileRequest struct {
		ImageURL *string `json:"image_url" validate:"omitempty,url"`
		Bio      *string `json:"bio"`
	}

	// ChangePasswordRequest and DeleteUserRequest carry the current
	// password as proof of identity.
	ChangePasswordRequest struct {
		CurrentPassword string  `json:"current_password"`
		Password        *string `json:"password"`
	}

	DeleteUserRequest struct {
		CurrentPassword string `json:"current_password"`
	}

	UploadAvatarRequest struct {
		Image *multipart.FileHeader `form:"image" validate:"required"`
	}

	// UserResponse is the external representation of a user. It has no
	// credential field, and its recipes carry no owner.
	UserResponse struct {
		ID        string           `json:"id"`
		Username  string           `json:"username"`
		ImageURL  string           `json:"image_url"`
		Bio       string           `json:"bio"`
		Recipes   []RecipeResponse `json:"recipes"`
		CreatedAt time.Time        `json:"created_at"`
		UpdatedAt time.Time        `json:"updated_at"`
	}

	// OwnerResponse is a user as seen from one of its recipes.
	OwnerResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		ImageURL  string    `json:"image_url"`
		Bio       string    `json:"bio"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)

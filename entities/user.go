package entities

import (
	"Recipe-Share/domain"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string     `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash Credential `gorm:"column:password_hash;type:text" json:"-"`
	ImageURL     string     `json:"image_url"`
	Bio          string     `json:"bio"`

	// Recipes is filled from the recipes table by the owner's id; the
	// relation itself is owned by Recipe.UserID.
	Recipes []Recipe `gorm:"-" json:"-"`
	Timestamp
}

// NewUser builds a user. A nil password leaves the credential unset.
func NewUser(username string, password *string) (*User, error) {
	u := &User{Username: username}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if password != nil {
		if err := u.SetPassword(*password); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// SetPassword replaces the stored hash with a fresh salted hash of
// plaintext. On failure the previous hash is kept.
func (u *User) SetPassword(plaintext string) error {
	c, err := newCredential(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = c
	return nil
}

// Authenticate reports whether plaintext is the most recently set password.
func (u *User) Authenticate(plaintext string) bool {
	return u.PasswordHash.matches(plaintext)
}

func (u *User) Validate() error {
	if u.Username == "" {
		return domain.ErrUsernameRequired
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ToResponse renders the user without its credential. Recipes are
// rendered without their owner.
func (u *User) ToResponse() domain.UserResponse {
	recipes := make([]domain.RecipeResponse, 0, len(u.Recipes))
	for i := range u.Recipes {
		recipes = append(recipes, u.Recipes[i].toResponse(false))
	}

	return domain.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		ImageURL:  u.ImageURL,
		Bio:       u.Bio,
		Recipes:   recipes,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *User) toOwnerResponse() *domain.OwnerResponse {
	return &domain.OwnerResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		ImageURL:  u.ImageURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToResponse())
}

func (u *User) String() string {
	return fmt.Sprintf("User %s, ID %s", u.Username, u.ID)
}

package entities

import (
	"Recipe-Share/domain"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinInstructionsLength is counted in characters, not bytes.
const MinInstructionsLength = 50

type Recipe struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string    `gorm:"not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete,omitempty"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Timestamp
}

func NewRecipe(title, instructions string, owner *User) (*Recipe, error) {
	r := &Recipe{}
	if err := r.SetTitle(title); err != nil {
		return nil, err
	}
	if err := r.SetInstructions(instructions); err != nil {
		return nil, err
	}
	if err := r.SetOwner(owner); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recipe) SetTitle(title string) error {
	if title == "" {
		return domain.ErrTitleRequired
	}
	r.Title = title
	return nil
}

// SetInstructions stores text as given. A rejected value leaves the
// current instructions in place.
func (r *Recipe) SetInstructions(text string) error {
	if err := validateInstructions(text); err != nil {
		return err
	}
	r.Instructions = text
	return nil
}

func (r *Recipe) SetMinutesToComplete(minutes *int) {
	r.MinutesToComplete = minutes
}

// SetOwner moves the recipe to owner.
func (r *Recipe) SetOwner(owner *User) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}
	r.User = owner
	r.UserID = owner.ID
	return nil
}

func validateInstructions(text string) error {
	if text == "" {
		return domain.ErrInstructionsRequired
	}
	if utf8.RuneCountInString(text) < MinInstructionsLength {
		return domain.ErrInstructionsTooShort
	}
	return nil
}

func (r *Recipe) Validate() error {
	if r.Title == "" {
		return domain.ErrTitleRequired
	}
	if err := validateInstructions(r.Instructions); err != nil {
		return err
	}
	if r.UserID == uuid.Nil && (r.User == nil || r.User.ID == uuid.Nil) {
		return domain.ErrOwnerRequired
	}
	return nil
}

// BeforeSave re-checks every field so that direct field writes cannot
// reach the store.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.UserID == uuid.Nil {
		r.UserID = r.User.ID
	}
	return nil
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ToResponse renders the recipe with its owner, when loaded. The owner is
// rendered without recipes.
func (r *Recipe) ToResponse() domain.RecipeResponse {
	return r.toResponse(true)
}

func (r *Recipe) toResponse(withOwner bool) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:                r.ID.String(),
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID.String(),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if withOwner && r.User != nil {
		res.User = r.User.toOwnerResponse()
	}
	return res
}

func (r Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToResponse())
}

func (r *Recipe) String() string {
	return fmt.Sprintf("Recipe %s, ID %s", r.Title, r.ID)
}

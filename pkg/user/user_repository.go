package user

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
	return domain.WrapPersistence("create user", err)
}

// UpdateUser writes every column of an existing row. A row that is gone
// yields ErrUserNotFound; it is never re-inserted.
func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	res := r.db.WithContext(ctx).Model(user).Select("*").Omit(clause.Associations).Updates(user)
	if res.Error != nil {
		return domain.WrapPersistence("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).Delete(user).Error
	return domain.WrapPersistence("delete user", err)
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapPersistence("get user", err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapPersistence("get user by username", err)
	}
	return &user, nil
}

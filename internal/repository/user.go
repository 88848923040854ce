package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id uint) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (model.User, error)
	Save(ctx context.Context, user model.User) (model.User, error)
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) Create(ctx context.Context, user model.User) (model.User, error) {
	result := u.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrDuplicateIdentity, result.Error)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) GetByID(ctx context.Context, id uint) (model.User, error) {
	var found model.User
	result := u.db.WithContext(ctx).First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotFound, result.Error)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var found model.User
	result := u.db.WithContext(ctx).Where("email = ?", email).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotFound, result.Error)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) GetByFirebaseUID(ctx context.Context, uid string) (model.User, error) {
	var found model.User
	result := u.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotFound, result.Error)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (u *user) Save(ctx context.Context, user model.User) (model.User, error) {
	result := u.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

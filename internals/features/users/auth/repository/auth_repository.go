// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "wedding_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

// FindUserByEmail returns gorm.ErrRecordNotFound when no user matches.
func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&authModel.UserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *authModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

/* ====================== PROFILE ====================== */

func CreateProfile(ctx context.Context, db *gorm.DB, profile *authModel.ProfileModel) error {
	return db.WithContext(ctx).Create(profile).Error
}

// FindProfileByUserID returns (nil, nil) when the user has no profile.
func FindProfileByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*authModel.ProfileModel, error) {
	var p authModel.ProfileModel
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "wedding_backend/internals/features/users/auth/dto"
	authHelper "wedding_backend/internals/features/users/auth/helper"
	authModel "wedding_backend/internals/features/users/auth/model"
	authRepo "wedding_backend/internals/features/users/auth/repository"
	helperAuth "wedding_backend/internals/helpers/auth"
)

var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrProfileNotFound    = errors.New("Profile not found")
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	Now       func() time.Time
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret, Now: time.Now}
}

// ========================== SIGN UP ==========================
// User and profile rows are written in one transaction.
func (s *AuthService) SignUp(ctx context.Context, req authDTO.SignUpRequest) (*authDTO.AuthResponse, error) {
	if err := authHelper.ValidateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := authHelper.DefaultDisplayName(req.Email)
	if req.Data.DisplayName != nil && strings.TrimSpace(*req.Data.DisplayName) != "" {
		displayName = *req.Data.DisplayName
	}

	user := authModel.UserModel{Email: req.Email, PasswordHash: hash}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := authRepo.EmailExists(ctx, tx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserExists
		}
		if err := authRepo.CreateUser(ctx, tx, &user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserExists
			}
			return err
		}
		return authRepo.CreateProfile(ctx, tx, &authModel.ProfileModel{
			UserID:      user.ID,
			DisplayName: &displayName,
		})
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("sign up: %w", err)
	}

	return s.session(&user)
}

// ========================== SIGN IN ==========================
func (s *AuthService) SignIn(ctx context.Context, req authDTO.SignInRequest) (*authDTO.AuthResponse, error) {
	if err := authHelper.ValidateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if !authHelper.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

// ========================== PROFILE ==========================
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*authModel.ProfileModel, error) {
	p, err := authRepo.FindProfileByUserID(ctx, s.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *AuthService) session(user *authModel.UserModel) (*authDTO.AuthResponse, error) {
	tok, err := helperAuth.IssueSessionToken(s.JWTSecret, user.ID, user.Email, s.Now())
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	resp := authDTO.NewAuthResponse(user, tok)
	return &resp, nil
}

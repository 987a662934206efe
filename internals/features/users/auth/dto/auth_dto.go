package dto

import (
	"github.com/google/uuid"

	authModel "wedding_backend/internals/features/users/auth/model"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Data     struct {
		DisplayName *string `json:"display_name"`
	} `json:"data"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type AuthResponse struct {
	User    UserResponse    `json:"user"`
	Session SessionResponse `json:"session"`
}

func NewAuthResponse(u *authModel.UserModel, accessToken string) AuthResponse {
	user := UserResponse{ID: u.ID, Email: u.Email}
	return AuthResponse{
		User:    user,
		Session: SessionResponse{AccessToken: accessToken, User: user},
	}
}

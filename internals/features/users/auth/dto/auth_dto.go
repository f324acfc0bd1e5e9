package dto

import (
	"time"

	"github.com/google/uuid"

	"oasisevents_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Role           string `json:"role" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	AssignedRegion string `json:"assigned_region"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	EmployeeID  string `json:"employee_id" validate:"required,uuid4"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type UserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	UserRole       string    `json:"user_role"`
	AssignedRegion *string   `json:"assigned_region,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserEmail:      m.UserEmail,
		UserRole:       m.UserRole,
		AssignedRegion: m.UserAssignedRegion,
		CreatedAt:      m.UserCreatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, ToUserResponse(&models[i]))
	}
	return out
}

// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertiku_backend/internals/features/users/user/model"
)

type UpdateMeRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUserQuery struct {
	Q    string `query:"q"`
	Role string `query:"role" validate:"omitempty,oneof=owner admin staff user"`
}

func FromModel(u model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromModel(u))
	}
	return out
}

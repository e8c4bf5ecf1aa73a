package dto

import (
	"time"

	"pustakaku_backend/internals/features/users/user/model"
)

// ============================
// Request DTO
// ============================

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a patch: nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID         int       `json:"userID"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	MembershipDate time.Time `json:"membership_date"`
}

// RegisteredUserDTO is the registration response: the user plus their
// bearer credential.
type RegisteredUserDTO struct {
	UserDTO
	Token string `json:"token"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		MembershipDate: m.MembershipDate,
	}
}

func ToUserDTOs(users []model.UserModel) []UserDTO {
	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"posyanduku_backend/internals/features/users/user/model"
)

/* ===========================
   Request DTO
   =========================== */

type CreateUserRequest struct {
	UserName             string `json:"user_name" validate:"required,min=3,max=50"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role" validate:"omitempty,oneof=admin kader"`
	IsActive             *bool  `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r *CreateUserRequest) ToModel() *model.UserModel {
	u := &model.UserModel{
		UserName: r.UserName,
		Password: r.Password, // di-hash controller sebelum simpan
		Role:     r.Role,
		IsActive: true,
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	u.SetDefaultValues()
	return u
}

// UpdateUserRequest: password opsional (kosong = tidak diganti)
type UpdateUserRequest struct {
	UserName             string `json:"user_name" validate:"required,min=3,max=50"`
	Password             string `json:"password" validate:"omitempty,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"omitempty,eqfield=Password"`
	Role                 string `json:"role" validate:"omitempty,oneof=admin kader"`
	IsActive             *bool  `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

/* ===========================
   Response DTO (tanpa material password)
   =========================== */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromModelList(us []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, FromModel(&us[i]))
	}
	return out
}

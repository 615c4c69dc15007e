package model

import (
	"time"

	"github.com/google/uuid"

	"posyanduku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users (petugas/kader posyandu)
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'kader'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleKader
	}
}

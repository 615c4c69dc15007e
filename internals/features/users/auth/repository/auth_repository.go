package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "posyanduku_backend/internals/features/users/auth/model"
	userModel "posyanduku_backend/internals/features/users/user/model"
)

// FindUserByUsername mengambil user untuk proses login.
func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.
		Where("user_name = ?", strings.TrimSpace(username)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// BlacklistToken menyimpan access token ke token_blacklist (idempotent:
// token yang sama tidak boleh membuat baris ganda).
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(&entry).Error
}

// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "propertiku_backend/internals/features/users/auth/model"
	userModel "propertiku_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token_hash = ?", hash).Delete(&authModel.RefreshToken{}).Error
}

func AddToBlacklist(db *gorm.DB, entry *authModel.TokenBlacklist) error {
	return db.Create(entry).Error
}

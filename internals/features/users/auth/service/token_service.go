package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "pustakaku_backend/internals/features/users/auth/model"
	helper "pustakaku_backend/internals/helpers"
)

// GenerateTokenKey returns a fresh opaque credential (64 hex chars).
func GenerateTokenKey() string {
	raw := uuid.NewString() + uuid.NewString()
	return strings.ReplaceAll(raw, "-", "")
}

// GetOrCreateToken returns the user's credential, issuing one on first
// use. A registration racing a login can both try to insert; the loser
// reloads the winner's row.
func GetOrCreateToken(db *gorm.DB, userID int) (string, error) {
	var token authModel.AuthTokenModel
	err := db.First(&token, "user_id = ?", userID).Error
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	token = authModel.AuthTokenModel{
		Key:    GenerateTokenKey(),
		UserID: userID,
	}
	if err := db.Create(&token).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			if reloadErr := db.First(&token, "user_id = ?", userID).Error; reloadErr == nil {
				return token.Key, nil
			}
		}
		return "", err
	}
	return token.Key, nil
}

// LookupToken resolves a credential key to its row, or
// gorm.ErrRecordNotFound.
func LookupToken(db *gorm.DB, key string) (authModel.AuthTokenModel, error) {
	var token authModel.AuthTokenModel
	err := db.First(&token, "key = ?", key).Error
	return token, err
}

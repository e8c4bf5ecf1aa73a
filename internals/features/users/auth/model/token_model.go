package model

import (
	"time"

	userModel "pustakaku_backend/internals/features/users/user/model"
)

// AuthTokenModel stores the opaque bearer credential. One row per user;
// the row goes away with the user.
type AuthTokenModel struct {
	TokenID   int                  `gorm:"column:token_id;primaryKey;autoIncrement" json:"token_id"`
	Key       string               `gorm:"column:key;size:64;uniqueIndex;not null" json:"key"`
	UserID    int                  `gorm:"column:user_id;uniqueIndex;not null" json:"userID"`
	User      *userModel.UserModel `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName sets the table name for AuthTokenModel
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}

package model

import (
	"strings"
	"time"
)

// UserModel represents the users table.
type UserModel struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"userID"`
	Name           string    `gorm:"column:name;size:255;not null" json:"name"`
	Email          string    `gorm:"column:email;size:254;uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"column:password;not null" json:"-"`
	MembershipDate time.Time `gorm:"column:membership_date;autoCreateTime" json:"membership_date"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsStaff        bool      `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	IsSuperuser    bool      `gorm:"column:is_superuser;not null;default:false" json:"-"`
}

// TableName sets the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// NormalizeEmail lower-cases the domain half of the address. The local
// part keeps its case, so addresses differing only there stay distinct.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

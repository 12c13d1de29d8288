package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username        string `gorm:"not null" json:"username"`
	Email           string `gorm:"unique;not null" json:"email"`
	Phone           string `gorm:"default:''" json:"phone"`
	Password        string `gorm:"not null" json:"-"`
	IsAdmin         bool   `gorm:"default:false" json:"isAdmin"`
	IsEmailVerified bool   `gorm:"default:false" json:"isEmailVerified"`
}

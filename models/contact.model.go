package models

import (
	"gorm.io/gorm"
)

type Contact struct {
	gorm.Model
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"not null" json:"email"`
	Message  string `gorm:"type:text;not null" json:"message"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
	RoleBanned = "banned"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FullName     string         `json:"full_name" gorm:"not null"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null;default:'member'"` // "member", "admin", "banned"
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

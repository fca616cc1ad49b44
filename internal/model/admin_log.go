package model

import (
	"time"
)

// AdminLog records every admin mutation for audit purposes.
type AdminLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AdminID    uint      `json:"admin_id" gorm:"not null;index"`
	Action     string    `json:"action" gorm:"not null"` // "create_quiz", "delete_quiz", "ban_user", ...
	TargetType string    `json:"target_type" gorm:"not null"`
	TargetID   uint      `json:"target_id"`
	Detail     string    `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

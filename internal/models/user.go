package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        *string    `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Rating       int        `gorm:"not null;default:1000" json:"rating"`
	Role         string     `gorm:"size:20;not null;default:'user'" json:"role"`
	TotalXP      int        `gorm:"not null;default:0" json:"total_xp"`
	Level        int        `gorm:"not null;default:1" json:"level"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

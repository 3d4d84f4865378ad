package models

import "time"

type Problem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Answer      string    `gorm:"size:255;not null" json:"answer,omitempty"`
	Difficulty  int       `gorm:"not null;default:1" json:"difficulty"`
	Category    string    `gorm:"size:100;not null;default:'Mathematics'" json:"category"`
	Tags        string    `gorm:"size:255" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
}

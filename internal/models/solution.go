package models

import "time"

// Solution is one practice-mode submission.
type Solution struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ProblemID uint      `gorm:"not null;index" json:"problem_id"`
	Answer    string    `gorm:"size:255" json:"answer"`
	IsCorrect bool      `json:"is_correct"`
	TimeSpent int       `json:"time_spent"`
	SolvedAt  time.Time `gorm:"autoCreateTime" json:"solved_at"`
}

package models

import "time"

// UserStats is a denormalized rollup maintained on every practice
// submission.
type UserStats struct {
	UserID            uint      `gorm:"primaryKey" json:"user_id"`
	TotalProblems     int       `gorm:"not null;default:0" json:"total_problems"`
	SolvedProblems    int       `gorm:"not null;default:0" json:"solved_problems"`
	CorrectAnswers    int       `gorm:"not null;default:0" json:"correct_answers"`
	TotalTimeSpent    int       `gorm:"not null;default:0" json:"total_time_spent"`
	AvgTimePerProblem float64   `gorm:"not null;default:0" json:"avg_time_per_problem"`
	LastUpdated       time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

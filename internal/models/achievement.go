package models

import "time"

type Achievement struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:100;not null" json:"name"`
	Description      string `gorm:"size:255" json:"description"`
	Icon             string `gorm:"size:20" json:"icon"`
	RequirementType  string `gorm:"size:50" json:"requirement_type"`
	RequirementValue int    `json:"requirement_value"`
}

const (
	RequirementProblemsSolved = "problems_solved"
	RequirementAccuracy       = "accuracy"
	RequirementRating         = "rating"
	RequirementPvPWins        = "pvp_wins"
)

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	EarnedAt      time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

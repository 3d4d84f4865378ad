package services

import (
	"log"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

func (s *AchievementService) ListAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

type EarnedAchievement struct {
	models.Achievement
	EarnedAt string `json:"earned_at"`
}

func (s *AchievementService) UserAchievements(userID uint) ([]EarnedAchievement, error) {
	var earned []EarnedAchievement
	err := s.db.Table("achievements a").
		Select("a.id, a.name, a.description, a.icon, a.requirement_type, a.requirement_value, ua.earned_at").
		Joins("JOIN user_achievements ua ON ua.achievement_id = a.id").
		Where("ua.user_id = ?", userID).
		Order("ua.earned_at DESC").
		Scan(&earned).Error
	if err != nil {
		return nil, err
	}
	return earned, nil
}

// Evaluate grants every achievement whose threshold the user currently
// meets. Already-granted rows are left alone, so repeated evaluation is
// harmless.
func (s *AchievementService) Evaluate(userID uint) {
	var total, correct int64
	s.db.Model(&models.Solution{}).Where("user_id = ?", userID).Count(&total)
	s.db.Model(&models.Solution{}).Where("user_id = ? AND is_correct = ?", userID, true).Count(&correct)

	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	var user models.User
	if err := s.db.Select("rating").First(&user, userID).Error; err != nil {
		return
	}

	var pvpWins int64
	s.db.Model(&models.Match{}).
		Where("winner_id = ? AND status = ?", userID, models.MatchStatusFinished).
		Count(&pvpWins)

	var achievements []models.Achievement
	s.db.Find(&achievements)

	for _, a := range achievements {
		unlock := false
		switch a.RequirementType {
		case models.RequirementProblemsSolved:
			unlock = correct >= int64(a.RequirementValue)
		case models.RequirementAccuracy:
			unlock = total > 0 && accuracy >= float64(a.RequirementValue)
		case models.RequirementRating:
			unlock = user.Rating >= a.RequirementValue
		case models.RequirementPvPWins:
			unlock = pvpWins >= int64(a.RequirementValue)
		}
		if !unlock {
			continue
		}

		grant := models.UserAchievement{UserID: userID, AchievementID: a.ID}
		if err := s.db.Where(models.UserAchievement{UserID: userID, AchievementID: a.ID}).
			FirstOrCreate(&grant).Error; err != nil {
			log.Printf("achievements: grant %q to user %d failed: %v", a.Name, userID, err)
		}
	}
}

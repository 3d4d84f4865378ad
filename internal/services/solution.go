package services

import (
	"errors"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"gorm.io/gorm"
)

// SolutionService handles practice-mode submissions: correctness check,
// rating/XP rewards and the user-stats rollup.
type SolutionService struct {
	db           *gorm.DB
	achievements *AchievementService
}

func NewSolutionService(db *gorm.DB, achievements *AchievementService) *SolutionService {
	return &SolutionService{db: db, achievements: achievements}
}

type SolutionResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	RatingChange  int    `json:"rating_change"`
	XPGained      int    `json:"xp_gained"`
}

func (s *SolutionService) Submit(userID, problemID uint, answer string, timeSpent int) (*SolutionResult, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errors.New("problem not found")
	}

	isCorrect := normalizeAnswer(answer) == normalizeAnswer(problem.Answer)

	solution := models.Solution{
		UserID:    userID,
		ProblemID: problemID,
		Answer:    answer,
		IsCorrect: isCorrect,
		TimeSpent: timeSpent,
	}
	if err := s.db.Create(&solution).Error; err != nil {
		return nil, err
	}

	result := &SolutionResult{
		Correct:       isCorrect,
		CorrectAnswer: normalizeAnswer(problem.Answer),
	}

	if isCorrect {
		result.RatingChange = problem.Difficulty * 10
		result.XPGained = problem.Difficulty * 50

		var user models.User
		if err := s.db.First(&user, userID).Error; err != nil {
			return nil, errors.New("user not found")
		}
		user.Rating += result.RatingChange
		user.TotalXP += result.XPGained
		if level := 1 + user.TotalXP/1000; level > user.Level {
			user.Level = level
		}
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
	}

	s.updateStats(userID, isCorrect, timeSpent)

	if isCorrect {
		s.achievements.Evaluate(userID)
	}
	return result, nil
}

func (s *SolutionService) updateStats(userID uint, isCorrect bool, timeSpent int) {
	var stats models.UserStats
	if err := s.db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		stats = models.UserStats{UserID: userID}
	}

	stats.TotalProblems++
	stats.TotalTimeSpent += timeSpent
	if isCorrect {
		stats.SolvedProblems++
		stats.CorrectAnswers++
	}
	stats.AvgTimePerProblem = float64(stats.TotalTimeSpent) / float64(stats.TotalProblems)
	s.db.Save(&stats)
}

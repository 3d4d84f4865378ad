package services

import (
	"errors"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"gorm.io/gorm"
)

type ProblemService struct {
	db *gorm.DB
}

func NewProblemService(db *gorm.DB) *ProblemService {
	return &ProblemService{db: db}
}

// ListProblems returns problems without their answers, optionally filtered
// by category and difficulty.
func (s *ProblemService) ListProblems(category string, difficulty int) ([]models.Problem, error) {
	query := s.db.Select("id", "title", "description", "difficulty", "category", "tags", "created_at")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var problems []models.Problem
	if err := query.Order("difficulty, id").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *ProblemService) GetProblem(problemID uint) (*models.Problem, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errors.New("problem not found")
	}
	return &problem, nil
}

func (s *ProblemService) CreateProblem(problem *models.Problem) error {
	if problem.Title == "" || problem.Description == "" || problem.Answer == "" {
		return errors.New("title, description and answer are required")
	}
	if problem.Difficulty < 1 || problem.Difficulty > 3 {
		problem.Difficulty = 1
	}
	if problem.Category == "" {
		problem.Category = "Mathematics"
	}
	return s.db.Create(problem).Error
}

func (s *ProblemService) UpdateProblem(problemID uint, updated *models.Problem) (*models.Problem, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errors.New("problem not found")
	}

	problem.Title = updated.Title
	problem.Description = updated.Description
	problem.Answer = updated.Answer
	problem.Difficulty = updated.Difficulty
	problem.Category = updated.Category
	problem.Tags = updated.Tags
	if err := s.db.Save(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// DeleteProblem removes the problem and every solution referencing it.
func (s *ProblemService) DeleteProblem(problemID uint) error {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return errors.New("problem not found")
	}

	s.db.Where("problem_id = ?", problemID).Delete(&models.Solution{})
	return s.db.Delete(&problem).Error
}

// ImportProblems inserts a batch, skipping entries that fail validation, and
// reports how many made it in.
func (s *ProblemService) ImportProblems(problems []models.Problem, createdBy uint) int {
	imported := 0
	for i := range problems {
		p := problems[i]
		p.ID = 0
		p.CreatedBy = &createdBy
		if err := s.CreateProblem(&p); err == nil {
			imported++
		}
	}
	return imported
}

// ExportProblems returns the full problem set, answers included.
func (s *ProblemService) ExportProblems() ([]models.Problem, error) {
	var problems []models.Problem
	if err := s.db.Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

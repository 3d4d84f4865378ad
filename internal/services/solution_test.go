package services

import (
	"testing"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCorrectSolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(db, NewAchievementService(db))

	p1, _ := seedPlayers(t, db)
	problem := models.Problem{
		Title:       "Binary",
		Description: "How many bits in a byte?",
		Answer:      "8",
		Difficulty:  2,
		Category:    "Informatics",
	}
	require.NoError(t, db.Create(&problem).Error)

	result, err := svc.Submit(p1, problem.ID, " 8 ", 40)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 20, result.RatingChange)
	assert.Equal(t, 100, result.XPGained)

	var user models.User
	require.NoError(t, db.First(&user, p1).Error)
	assert.Equal(t, 1020, user.Rating)
	assert.Equal(t, 100, user.TotalXP)
	assert.Equal(t, 1, user.Level)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", p1).First(&stats).Error)
	assert.Equal(t, 1, stats.TotalProblems)
	assert.Equal(t, 1, stats.CorrectAnswers)
	assert.Equal(t, 40.0, stats.AvgTimePerProblem)
}

func TestSubmitIncorrectSolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(db, NewAchievementService(db))

	p1, _ := seedPlayers(t, db)
	problem := seedProblem(t, db)

	result, err := svc.Submit(p1, problem.ID, "5", 15)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, "4", result.CorrectAnswer)
	assert.Zero(t, result.RatingChange)
	assert.Zero(t, result.XPGained)

	var user models.User
	require.NoError(t, db.First(&user, p1).Error)
	assert.Equal(t, 1000, user.Rating)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", p1).First(&stats).Error)
	assert.Equal(t, 1, stats.TotalProblems)
	assert.Equal(t, 0, stats.CorrectAnswers)
}

func TestSubmitUnknownProblem(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(db, NewAchievementService(db))
	p1, _ := seedPlayers(t, db)

	_, err := svc.Submit(p1, 99999, "4", 10)
	assert.EqualError(t, err, "problem not found")
}

func TestSubmitLevelsUp(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(db, NewAchievementService(db))

	p1, _ := seedPlayers(t, db)
	problem := models.Problem{
		Title:       "Hard one",
		Description: "?",
		Answer:      "42",
		Difficulty:  3,
		Category:    "Mathematics",
	}
	require.NoError(t, db.Create(&problem).Error)

	// Difficulty 3 pays 150 XP per solve; level 2 needs 1000 total.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", p1).Update("total_xp", 950).Error)

	result, err := svc.Submit(p1, problem.ID, "42", 10)
	require.NoError(t, err)
	assert.Equal(t, 150, result.XPGained)

	var user models.User
	require.NoError(t, db.First(&user, p1).Error)
	assert.Equal(t, 1100, user.TotalXP)
	assert.Equal(t, 2, user.Level)
}

func TestSubmitGrantsSolveAchievement(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(db, NewAchievementService(db))

	require.NoError(t, db.Create(&models.Achievement{
		Name:             "First Steps",
		Description:      "Solve your first problem",
		RequirementType:  models.RequirementProblemsSolved,
		RequirementValue: 1,
	}).Error)

	p1, _ := seedPlayers(t, db)
	problem := seedProblem(t, db)

	_, err := svc.Submit(p1, problem.ID, "4", 10)
	require.NoError(t, err)

	var grants int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", p1).Count(&grants)
	assert.Equal(t, int64(1), grants)

	// A second correct solve does not re-grant it.
	_, err = svc.Submit(p1, problem.ID, "4", 12)
	require.NoError(t, err)
	db.Model(&models.UserAchievement{}).Where("user_id = ?", p1).Count(&grants)
	assert.Equal(t, int64(1), grants)
}

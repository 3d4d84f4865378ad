package services

import (
	"errors"
	"math"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type PlatformStats struct {
	UsersCount       int64 `json:"users_count"`
	ProblemsCount    int64 `json:"problems_count"`
	CorrectSolutions int64 `json:"correct_solutions"`
	MatchesPlayed    int64 `json:"matches_played"`
}

func (s *StatsService) PlatformStats() (*PlatformStats, error) {
	var stats PlatformStats
	s.db.Model(&models.User{}).Count(&stats.UsersCount)
	s.db.Model(&models.Problem{}).Count(&stats.ProblemsCount)
	s.db.Model(&models.Solution{}).Where("is_correct = ?", true).Count(&stats.CorrectSolutions)
	s.db.Model(&models.Match{}).Where("status = ?", models.MatchStatusFinished).Count(&stats.MatchesPlayed)
	return &stats, nil
}

type CategoryStats struct {
	Category string  `json:"category"`
	Total    int64   `json:"total"`
	Correct  int64   `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type PvPRecord struct {
	Matches int64   `json:"pvp_matches"`
	Wins    int64   `json:"pvp_wins"`
	WinRate float64 `json:"pvp_winrate"`
}

type UserProfile struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	Rating         int             `json:"rating"`
	Role           string          `json:"role"`
	XP             int             `json:"xp"`
	Level          int             `json:"level"`
	TotalProblems  int64           `json:"total_problems"`
	CorrectAnswers int64           `json:"correct_answers"`
	Accuracy       float64         `json:"accuracy"`
	AvgTime        float64         `json:"avg_time"`
	PvP            PvPRecord       `json:"pvp"`
	Categories     []CategoryStats `json:"categories"`
}

func (s *StatsService) UserStats(userID uint) (*UserProfile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	profile := &UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Rating:   user.Rating,
		Role:     user.Role,
		XP:       user.TotalXP,
		Level:    user.Level,
	}

	var agg struct {
		Total   int64
		Correct int64
		AvgTime float64
	}
	s.db.Model(&models.Solution{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct, COALESCE(AVG(time_spent), 0) AS avg_time").
		Where("user_id = ?", userID).
		Scan(&agg)

	profile.TotalProblems = agg.Total
	profile.CorrectAnswers = agg.Correct
	profile.AvgTime = round2(agg.AvgTime)
	if agg.Total > 0 {
		profile.Accuracy = round2(float64(agg.Correct) / float64(agg.Total) * 100)
	}

	s.db.Table("solutions s").
		Select("p.category, COUNT(*) AS total, COALESCE(SUM(CASE WHEN s.is_correct THEN 1 ELSE 0 END), 0) AS correct").
		Joins("JOIN problems p ON s.problem_id = p.id").
		Where("s.user_id = ?", userID).
		Group("p.category").
		Order("total DESC").
		Scan(&profile.Categories)
	for i := range profile.Categories {
		c := &profile.Categories[i]
		if c.Total > 0 {
			c.Accuracy = round2(float64(c.Correct) / float64(c.Total) * 100)
		}
	}

	var pvp struct {
		Matches int64
		Wins    int64
	}
	s.db.Model(&models.Match{}).
		Select("COUNT(*) AS matches, COALESCE(SUM(CASE WHEN winner_id = ? THEN 1 ELSE 0 END), 0) AS wins", userID).
		Where("(player1_id = ? OR player2_id = ?) AND status = ?", userID, userID, models.MatchStatusFinished).
		Scan(&pvp)
	profile.PvP = PvPRecord{Matches: pvp.Matches, Wins: pvp.Wins}
	if pvp.Matches > 0 {
		profile.PvP.WinRate = round2(float64(pvp.Wins) / float64(pvp.Matches) * 100)
	}

	return profile, nil
}

type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Rating   int     `json:"rating"`
	Level    int     `json:"level"`
	Solved   int64   `json:"solved"`
	Correct  int64   `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Leaderboard returns the top 50 users by rating with their solve counts.
func (s *StatsService) Leaderboard() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := s.db.Table("users u").
		Select("u.id, u.username, u.rating, u.level, COUNT(s.id) AS solved, COALESCE(SUM(CASE WHEN s.is_correct THEN 1 ELSE 0 END), 0) AS correct").
		Joins("LEFT JOIN solutions s ON s.user_id = u.id").
		Group("u.id, u.username, u.rating, u.level").
		Order("u.rating DESC").
		Limit(50).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
		if entries[i].Solved > 0 {
			entries[i].Accuracy = round2(float64(entries[i].Correct) / float64(entries[i].Solved) * 100)
		}
	}
	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package services

import (
	"errors"
	"log"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService covers username lookups and the admin user-management surface.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Username resolves a display name; missing users degrade to "" so callers
// like the disconnect path never fail on a lookup.
func (s *UserService) Username(userID uint) string {
	var user models.User
	if err := s.db.Select("username").First(&user, userID).Error; err != nil {
		log.Printf("users: username lookup for %d failed: %v", userID, err)
		return ""
	}
	return user.Username
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Rating   int     `json:"rating"`
	Role     string  `json:"role"`
	Level    int     `json:"level"`
	Solved   int64   `json:"solved"`
	Correct  int64   `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

func (s *UserService) ListUsers() ([]UserSummary, error) {
	var users []UserSummary
	err := s.db.Table("users u").
		Select("u.id, u.username, COALESCE(u.email, '') AS email, u.rating, u.role, u.level, COALESCE(us.solved_problems, 0) AS solved, COALESCE(us.correct_answers, 0) AS correct").
		Joins("LEFT JOIN user_stats us ON us.user_id = u.id").
		Order("u.rating DESC").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Solved > 0 {
			users[i].Accuracy = round2(float64(users[i].Correct) / float64(users[i].Solved) * 100)
		}
	}
	return users, nil
}

func (s *UserService) CreateUser(username, email, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, errors.New("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Rating:       1000,
		Level:        1,
	}
	if email != "" {
		user.Email = &email
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	s.db.Create(&models.UserStats{UserID: user.ID})
	return &user, nil
}

// UpdateUser changes role and/or rating; nil fields are left untouched.
func (s *UserService) UpdateUser(targetID uint, role *string, rating *int) error {
	var user models.User
	if err := s.db.First(&user, targetID).Error; err != nil {
		return errors.New("user not found")
	}

	updates := map[string]interface{}{}
	if role != nil && (*role == models.RoleAdmin || *role == models.RoleUser) {
		updates["role"] = *role
	}
	if rating != nil {
		updates["rating"] = *rating
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&user).Updates(updates).Error
}

// DeleteUser removes the user and everything hanging off it. Admins cannot
// delete themselves.
func (s *UserService) DeleteUser(adminID, targetID uint) error {
	if adminID == targetID {
		return errors.New("cannot delete your own account")
	}

	var user models.User
	if err := s.db.First(&user, targetID).Error; err != nil {
		return errors.New("user not found")
	}

	s.db.Where("user_id = ?", targetID).Delete(&models.UserStats{})
	s.db.Where("user_id = ?", targetID).Delete(&models.Solution{})
	s.db.Where("player1_id = ? OR player2_id = ?", targetID, targetID).Delete(&models.Match{})
	s.db.Where("user_id = ?", targetID).Delete(&models.UserAchievement{})
	return s.db.Delete(&user).Error
}

package database

import (
	"fmt"
	"log"

	"github.com/ghostblade1342/olimpiada--inf/internal/config"
	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Solution{},
		&models.Match{},
		&models.UserStats{},
		&models.Achievement{},
		&models.UserAchievement{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Seed creates the default admin account plus a starter problem set and the
// achievement definitions. Safe to run on every start.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		db.Create(&models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Rating:       1000,
			Level:        1,
		})
		log.Println("seeded admin account")
	}

	db.Model(&models.Problem{}).Count(&count)
	if count == 0 {
		problems := []models.Problem{
			{Title: "Sum of numbers", Description: "What is 2 + 2?", Answer: "4", Difficulty: 1, Category: "Mathematics", Tags: "arithmetic"},
			{Title: "Square of a number", Description: "What is the square of 7?", Answer: "49", Difficulty: 2, Category: "Mathematics", Tags: "algebra"},
			{Title: "Prime check", Description: "Is 29 a prime number? (yes/no)", Answer: "yes", Difficulty: 2, Category: "Mathematics", Tags: "number theory"},
			{Title: "Square perimeter", Description: "Find the perimeter of a square with side 8 cm", Answer: "32", Difficulty: 2, Category: "Geometry", Tags: "perimeter"},
			{Title: "Circle area", Description: "Find the area of a circle with radius 5 (pi = 3.14)", Answer: "78.5", Difficulty: 3, Category: "Geometry", Tags: "area"},
			{Title: "Linear equation", Description: "Solve the equation: 3x - 7 = 14", Answer: "7", Difficulty: 3, Category: "Algebra", Tags: "equations"},
			{Title: "Percentage", Description: "What is 20% of 150?", Answer: "30", Difficulty: 1, Category: "Mathematics", Tags: "percentages"},
			{Title: "Power of two", Description: "Compute 2^5", Answer: "32", Difficulty: 2, Category: "Mathematics", Tags: "powers"},
			{Title: "Factorial", Description: "Find 5!", Answer: "120", Difficulty: 3, Category: "Mathematics", Tags: "factorial"},
			{Title: "Hypotenuse", Description: "A right triangle has legs 3 and 4. Find the hypotenuse", Answer: "5", Difficulty: 3, Category: "Geometry", Tags: "pythagorean theorem"},
			{Title: "Syllogism", Description: "If all A are B, and all B are C, then all A are C. True? (yes/no)", Answer: "yes", Difficulty: 2, Category: "Logic", Tags: "logic"},
			{Title: "Permutations", Description: "In how many ways can 3 books be arranged on a shelf?", Answer: "6", Difficulty: 3, Category: "Combinatorics", Tags: "permutations"},
		}
		db.Create(&problems)
		log.Printf("seeded %d problems", len(problems))
	}

	db.Model(&models.Achievement{}).Count(&count)
	if count == 0 {
		achievements := []models.Achievement{
			{Name: "First Steps", Description: "Solve your first problem", Icon: "🎯", RequirementType: models.RequirementProblemsSolved, RequirementValue: 1},
			{Name: "Mathematician", Description: "Solve 10 problems", Icon: "📐", RequirementType: models.RequirementProblemsSolved, RequirementValue: 10},
			{Name: "Master", Description: "Solve 50 problems", Icon: "🏆", RequirementType: models.RequirementProblemsSolved, RequirementValue: 50},
			{Name: "Legend", Description: "Solve 100 problems", Icon: "👑", RequirementType: models.RequirementProblemsSolved, RequirementValue: 100},
			{Name: "90% Accuracy", Description: "Reach 90% accuracy", Icon: "🎯", RequirementType: models.RequirementAccuracy, RequirementValue: 90},
			{Name: "Fighter", Description: "Win your first PvP match", Icon: "⚔️", RequirementType: models.RequirementPvPWins, RequirementValue: 1},
			{Name: "Gladiator", Description: "Win 10 PvP matches", Icon: "🛡️", RequirementType: models.RequirementPvPWins, RequirementValue: 10},
			{Name: "Rating 1500", Description: "Reach a rating of 1500", Icon: "⭐", RequirementType: models.RequirementRating, RequirementValue: 1500},
		}
		db.Create(&achievements)
		log.Printf("seeded %d achievements", len(achievements))
	}
}

package main

import (
	"log"

	"github.com/ghostblade1342/olimpiada--inf/internal/config"
	"github.com/ghostblade1342/olimpiada--inf/internal/database"
	"github.com/ghostblade1342/olimpiada--inf/internal/handlers"
	"github.com/ghostblade1342/olimpiada--inf/internal/middleware"
	"github.com/ghostblade1342/olimpiada--inf/internal/services"
	"github.com/ghostblade1342/olimpiada--inf/internal/ws"

	_ "github.com/ghostblade1342/olimpiada--inf/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Olympiad Platform API
// @version         1.0
// @description     Competitive problem-solving platform with practice mode and real-time PvP matches
// @host            localhost:8082
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	userService := services.NewUserService(db)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	problemService := services.NewProblemService(db)
	achievementService := services.NewAchievementService(db)
	solutionService := services.NewSolutionService(db, achievementService)
	ratingService := services.NewRatingService()
	matchService := services.NewMatchService(db, ratingService, achievementService)
	statsService := services.NewStatsService(db)

	hub := ws.NewHub(userService.Username)
	wsServer := ws.NewServer(":"+cfg.WSPort, hub)
	go func() {
		if err := wsServer.ListenAndServe(); err != nil {
			log.Fatalf("ws server failed: %v", err)
		}
	}()

	authHandler := handlers.NewAuthHandler(authService)
	problemHandler := handlers.NewProblemHandler(problemService)
	solutionHandler := handlers.NewSolutionHandler(solutionService)
	matchHandler := handlers.NewMatchHandler(matchService, hub)
	statsHandler := handlers.NewStatsHandler(statsService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	userHandler := handlers.NewUserHandler(userService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/problems", problemHandler.ListProblems)
		api.GET("/problems/:id", problemHandler.GetProblem)

		adminProblems := api.Group("/problems")
		adminProblems.Use(middleware.JWTAuth(authService), middleware.AdminOnly(authService))
		{
			adminProblems.POST("", problemHandler.CreateProblem)
			adminProblems.PUT("/:id", problemHandler.UpdateProblem)
			adminProblems.DELETE("/:id", problemHandler.DeleteProblem)
			adminProblems.POST("/import", problemHandler.ImportProblems)
			adminProblems.GET("/export", problemHandler.ExportProblems)
		}

		solutions := api.Group("/solutions")
		solutions.Use(middleware.JWTAuth(authService))
		{
			solutions.POST("", solutionHandler.SubmitSolution)
		}

		api.GET("/matches", matchHandler.ListMatches)
		api.GET("/matches/:id", matchHandler.GetMatch)

		matches := api.Group("/matches")
		matches.Use(middleware.JWTAuth(authService))
		{
			matches.POST("", matchHandler.CreateMatch)
			matches.POST("/:id/join", matchHandler.JoinMatch)
			matches.POST("/:id/answer", matchHandler.SubmitMatchAnswer)
		}

		api.GET("/stats", statsHandler.PlatformStats)
		api.GET("/leaderboard", statsHandler.Leaderboard)
		api.GET("/users/:id/stats", statsHandler.UserStats)
		api.GET("/achievements", achievementHandler.ListAchievements)
		api.GET("/users/:id/achievements", achievementHandler.UserAchievements)

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService), middleware.AdminOnly(authService))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	log.Printf("server starting on :%s (ws on :%s)", cfg.ServerPort, cfg.WSPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

package main

import (
	"log"

	"careerprep/config"
	"careerprep/handlers"
	"careerprep/middleware"
	"careerprep/models"
	"careerprep/routes"
	"careerprep/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.AuthUser{},
		&models.User{},
		&models.Invitation{},
		&models.PasswordReset{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.Article{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize the live scoreboard hub
	hub := services.NewHub()
	go hub.Run()

	// Initialize services
	identityService := services.NewIdentityService(db)
	authService := services.NewAuthService(db, identityService, cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword)
	invitationService := services.NewInvitationService(db)
	registrationService := services.NewRegistrationService(db, identityService)
	studentService := services.NewStudentService(db, identityService)
	quizService := services.NewQuizService(db)
	attemptService := services.NewAttemptService(db, redisClient, hub)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, registrationService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	studentHandler := handlers.NewStudentHandler(studentService)
	quizHandler := handlers.NewQuizHandler(quizService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, invitationHandler, studentHandler, quizHandler, attemptHandler, hub, cfg.JWTSecret)

	// Start server
	addr := cfg.BindAddress + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

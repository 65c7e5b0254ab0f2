package routes

import (
	"log"
	"net/http"

	"careerprep/handlers"
	"careerprep/middleware"
	"careerprep/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	invitationHandler *handlers.InvitationHandler,
	studentHandler *handlers.StudentHandler,
	quizHandler *handlers.QuizHandler,
	attemptHandler *handlers.AttemptHandler,
	hub *services.Hub,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/register/check", invitationHandler.CheckCode)
			auth.POST("/register/verify", authHandler.VerifyCode)
			auth.POST("/register", authHandler.Register)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Quiz catalog (read-only for students)
			quizzes := protected.Group("/quizzes")
			{
				quizzes.GET("", quizHandler.ListQuizzes)
				quizzes.GET("/:id", quizHandler.GetQuizByID)
			}

			protected.GET("/articles", quizHandler.ListArticles)

			// Attempt recording and review
			attempts := protected.Group("/quiz-attempts")
			{
				attempts.POST("", attemptHandler.RecordAttempt)
				attempts.GET("", attemptHandler.ListAttempts)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				invitations := admin.Group("/invitations")
				{
					invitations.POST("", invitationHandler.CreateInvitation)
					invitations.GET("", invitationHandler.ListInvitations)
					invitations.POST("/:id/regenerate", invitationHandler.RegenerateInviteCode)
					invitations.DELETE("/:id", invitationHandler.DeleteInvitation)
				}

				students := admin.Group("/students")
				{
					students.GET("", studentHandler.ListStudents)
					students.DELETE("/:id", studentHandler.DeleteStudent)
				}

				resets := admin.Group("/password-resets")
				{
					resets.POST("", studentHandler.CreatePasswordReset)
					resets.GET("", studentHandler.ListPasswordResets)
					resets.DELETE("/:id", studentHandler.DeletePasswordReset)
				}

				articles := admin.Group("/articles")
				{
					articles.POST("", quizHandler.CreateArticle)
					articles.PUT("/:id", quizHandler.UpdateArticle)
					articles.DELETE("/:id", quizHandler.DeleteArticle)
				}

				admin.POST("/quizzes", quizHandler.CreateQuiz)
				admin.GET("/scoreboard", attemptHandler.GetScoreboard)
			}
		}
	}

	// WebSocket endpoint for the live scoreboard (admin only; token comes in
	// the query string because browsers cannot set headers on upgrades)
	wsGroup := router.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireAdmin())
	wsGroup.GET("/scoreboard", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		hub.RegisterClient(conn)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

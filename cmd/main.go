package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JosephArr12/gradebook-backend/internal/config"
	"github.com/JosephArr12/gradebook-backend/internal/handlers"
	"github.com/JosephArr12/gradebook-backend/internal/logger"
	"github.com/JosephArr12/gradebook-backend/internal/repository"
	"github.com/JosephArr12/gradebook-backend/internal/services"
	"github.com/JosephArr12/gradebook-backend/pkg/database"
	"github.com/JosephArr12/gradebook-backend/pkg/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.Setup(cfg.Env)

	db, err := database.NewDatabase(cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return
	}
	defer db.Close()

	// Keep a dev database usable without a course-setup system around.
	if err := db.EnsureTestCourse(cfg.DefaultCourseID); err != nil {
		log.Warn("Failed to ensure test course", "error", err)
	}

	// Optional notification channel
	var notifier services.Notifier
	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Warn("Failed to initialize Telegram bot", "error", err)
		} else {
			notifier = bot
		}
	}

	// Repositories
	courseRepo := repository.NewCourseRepository(db.DB)
	enrollmentRepo := repository.NewEnrollmentRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	gradeRepo := repository.NewGradeRepository(db.DB)

	// Services
	gradebookService := services.NewGradebookService(courseRepo, enrollmentRepo, assignmentRepo, gradeRepo, notifier)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)

	// Handlers
	assignmentHandler := handlers.NewAssignmentHandler(gradebookService, cfg.DefaultCourseID)
	gradebookHandler := handlers.NewGradebookHandler(gradebookService)

	router := gin.Default()
	router.Use(handlers.CORSMiddleware())
	router.Use(handlers.RequestIDMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("")
	if cfg.AuthRequired {
		api.Use(handlers.AuthMiddleware(tokenService))
	}
	handlers.RegisterRoutes(api, assignmentHandler, gradebookHandler)

	addr := cfg.Host + ":" + cfg.Port
	log.Info("Starting gradebook backend", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("Server stopped", "error", err)
	}
}

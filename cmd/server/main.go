package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jaiyan-th/portfolio/internal/handlers"
	"github.com/jaiyan-th/portfolio/internal/middleware"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/services"
	"github.com/jaiyan-th/portfolio/pkg/config"
	"github.com/jaiyan-th/portfolio/pkg/database"
	"github.com/jaiyan-th/portfolio/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path, config.AppConfig.Database.MigrationsDir); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	projectRepo := repositories.NewProjectRepository(database.DB)
	projectService := services.NewProjectService(projectRepo)
	skillRepo := repositories.NewSkillRepository(database.DB)
	skillService := services.NewSkillService(skillRepo)
	contactRepo := repositories.NewContactMessageRepository(database.DB)
	contactService := services.NewContactService(contactRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}))

	// Setup static files
	router.Static("/static", config.AppConfig.Web.StaticDir)

	// Setup routes
	setupRoutes(router, projectService, skillService, contactService)
	loadTemplates(router)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, projectService *services.ProjectService, skillService *services.SkillService, contactService *services.ContactService) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	projectHandler := handlers.NewProjectHandler(projectService)
	skillHandler := handlers.NewSkillHandler(skillService)
	contactHandler := handlers.NewContactHandler(contactService)
	healthHandler := handlers.NewHealthHandler()

	// Portfolio page
	router.GET("/", homeHandler.Index)

	// Content API
	api := router.Group("/api")
	{
		api.GET("/projects", projectHandler.GetProjects)
		api.GET("/projects/featured", projectHandler.GetFeaturedProjects)
		api.GET("/skills", skillHandler.GetSkills)
		api.POST("/contact", contactHandler.SubmitContact)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, config.AppConfig.Web.TemplatesDir, "index.html"),
	)
}

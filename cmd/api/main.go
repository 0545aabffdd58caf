// Package main is the entry point for the blog service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/config"
	"github.com/kiernans/blog-top/internal/database"
	"github.com/kiernans/blog-top/internal/handlers"
	"github.com/kiernans/blog-top/internal/metrics"
	"github.com/kiernans/blog-top/internal/repository"
	"github.com/kiernans/blog-top/internal/routes"
	"github.com/kiernans/blog-top/internal/service"
	"github.com/kiernans/blog-top/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg := config.Load()

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		logger.Fatalf("Failed to create JWT service: %v", err)
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Users:    handlers.NewUsersHandler(userRepo),
		Posts:    handlers.NewPostsHandler(postService),
		Comments: handlers.NewCommentsHandler(commentService),
		Health:   handlers.NewHealthHandler(db, redisClient),
	}, authService, jwtService, m, logger)

	// Start server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting blog service on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}

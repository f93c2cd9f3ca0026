package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vasantha-kumar-s/bloggy/internal/analysis"
	"github.com/vasantha-kumar-s/bloggy/internal/config"
	"github.com/vasantha-kumar-s/bloggy/internal/handler"
	"github.com/vasantha-kumar-s/bloggy/internal/infrastructure/database"
	"github.com/vasantha-kumar-s/bloggy/internal/logger"
	"github.com/vasantha-kumar-s/bloggy/internal/mail"
	"github.com/vasantha-kumar-s/bloggy/internal/metrics"
	"github.com/vasantha-kumar-s/bloggy/internal/middleware"
	"github.com/vasantha-kumar-s/bloggy/internal/notify"
	"github.com/vasantha-kumar-s/bloggy/internal/pipeline"
	"github.com/vasantha-kumar-s/bloggy/internal/repository"
	"github.com/vasantha-kumar-s/bloggy/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply schema migrations before opening the pool
	if cfg.MigrationsDir != "" {
		if err := database.Migrate(cfg.MigrationsDir, poolCfg.URL()); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	docRepo := repository.NewPostgresDocumentRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	followRepo := repository.NewPostgresFollowRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize notification fan-out
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	notifier := notify.NewNotifier(followRepo, mailer, cfg.SiteBaseURL)

	// Initialize the analysis pipeline
	tokenizer := analysis.NewTokenizer(analysis.DefaultStopWords)
	scorer := analysis.NewScorer(analysis.DefaultProfanityList)
	pipe := pipeline.New(docRepo, tokenizer, scorer, notifier, pipeline.Config{
		Workers:    cfg.WorkerPoolSize,
		QueueSize:  cfg.QueueSize,
		MaxTags:    cfg.MaxTags,
		RunTimeout: cfg.RunTimeout,
	})

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(docRepo, pipe, v)
	userHandler := handler.NewUserHandler(userRepo, notifier, v)
	commentHandler := handler.NewCommentHandler(commentRepo, docRepo, v)
	followHandler := handler.NewFollowHandler(followRepo, v)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		documents := v1.Group("/documents")
		{
			documents.POST("", documentHandler.SubmitDocument)
			documents.GET("", documentHandler.ListDocuments)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id/status", documentHandler.UpdateStatus)
			documents.POST("/:id/comments", commentHandler.CreateComment)
			documents.GET("/:id/comments", commentHandler.ListComments)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.RegisterUser)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/follows", followHandler.ListFollowedAuthors)
		}

		follows := v1.Group("/follows")
		{
			follows.POST("", followHandler.Follow)
			follows.DELETE("", followHandler.Unfollow)
			follows.GET("/check", followHandler.IsFollowing)
		}

		v1.GET("/authors/:name/followers/count", followHandler.FollowerCount)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the pipeline first so in-flight analysis runs finish before
	// the process exits.
	logger.Info("Closing analysis pipeline")
	pipe.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

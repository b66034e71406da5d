package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-backend/config"
	_ "job-portal-backend/docs" // Important for Swagger
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	pkgredis "job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/security"

	"github.com/redis/go-redis/v9"
)

// @title           Job Portal API
// @version         1.0
// @description     Job portal backend: registration, login, job postings and applications.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DSN(), int32(cfg.DBMaxConns))
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.InitSchema(ctx, dbPool); err != nil {
		logger.Log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var cacheClient redis.Cmdable
	var cacheCheck usecase.CacheChecker
	if cfg.RedisURL != "" {
		if err := pkgredis.Initialize(pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, job list caching disabled", "error", err)
		} else {
			cacheClient = pkgredis.Client()
			cacheCheck = pkgredis.HealthCheck
			defer pkgredis.Close()
		}
	}
	jobCache := pkgredis.NewJobListCache(cacheClient, cfg.JobCacheTTL)

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup UseCases
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	auditLog := security.NewAuditLogger("job-portal-backend")
	defer auditLog.Sync()
	authUC := usecase.NewAuthUsecase(userRepo, adminRepo, hasher, auditLog)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, jobCache)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	healthUC := usecase.NewHealthUsecase(dbPool, cacheCheck)

	// 7. Seed admin account
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
		switch {
		case err != nil:
			logger.Log.Error("Failed to seed admin account", "email", cfg.AdminEmail, "error", err)
		case created:
			logger.Log.Info("Admin account created", "email", cfg.AdminEmail)
		}
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		UserUC:        userUC,
		HealthUC:      healthUC,
		PublicDir:     cfg.PublicDir,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

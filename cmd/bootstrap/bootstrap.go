package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lenglogs/config"
	deliveryHttp "lenglogs/internal/delivery/http"
	"lenglogs/internal/delivery/http/handler"
	"lenglogs/internal/delivery/http/middleware"
	"lenglogs/internal/infrastructure/cache"
	"lenglogs/internal/infrastructure/database"
	"lenglogs/internal/repository"
	"lenglogs/internal/service"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/jwt"
	"lenglogs/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg, Log: logrus.StandardLogger()}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	if cfg.App.AutoMigrate {
		if err := Migrate(cfg, func(m *database.Migrator) error { return m.Up() }); err != nil {
			app.Close()
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, app.Log, db, redisClient)

	return app, nil
}

// SetupLogger configures the standard logrus logger
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Migrate opens a migrator for the configured database, runs fn and closes it.
func Migrate(cfg *config.Config, fn func(*database.Migrator) error) error {
	migrator, err := database.NewMigrator(cfg.DB)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return fn(migrator)
}

func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokenStore := cache.NewTokenStore(redisClient)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewUserProfileRepository()
	facilityRepo := repository.NewFacilityRepository()
	patientRepo := repository.NewPatientRepository()
	formRepo := repository.NewFormRepository()
	questionRepo := repository.NewQuestionRepository()
	submissionRepo := repository.NewSubmissionRepository()
	answerRepo := repository.NewAnswerRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	rosterExporter := service.NewRosterExporter()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, facilityRepo, auditService, jwtService, tokenStore)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService, rosterExporter)
	formUsecase := usecase.NewFormUsecase(db, log, formRepo, questionRepo, auditService)
	submissionUsecase := usecase.NewSubmissionUsecase(db, log, formRepo, submissionRepo, answerRepo, auditService)
	facilityUsecase := usecase.NewFacilityUsecase(db, log, facilityRepo, profileRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, formRepo, submissionRepo, patientRepo, profileRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	router := deliveryHttp.NewRouter(deliveryHttp.Handlers{
		Health:     handler.NewHealthHandler(db, redisClient),
		Auth:       handler.NewAuthHandler(authUsecase, customValidator),
		Dashboard:  handler.NewDashboardHandler(dashboardUsecase),
		Form:       handler.NewFormHandler(formUsecase, customValidator),
		Submission: handler.NewSubmissionHandler(submissionUsecase),
		Patient:    handler.NewPatientHandler(patientUsecase, customValidator),
		Facility:   handler.NewFacilityHandler(facilityUsecase, customValidator),
		AuditLog:   handler.NewAuditLogHandler(auditLogUsecase),
	}, deliveryHttp.Middlewares{
		Auth:    middleware.NewAuthMiddleware(jwtService, tokenStore, log),
		Profile: middleware.NewProfileMiddleware(db, log, profileRepo),
		CORS:    middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		Logging: middleware.NewLoggingMiddleware(log),
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

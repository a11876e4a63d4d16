package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-backend/config"
	deliveryHttp "go-clinic-backend/internal/delivery/http"
	"go-clinic-backend/internal/delivery/http/handler"
	"go-clinic-backend/internal/delivery/http/middleware"
	"go-clinic-backend/internal/infrastructure/cache"
	"go-clinic-backend/internal/infrastructure/database"
	"go-clinic-backend/internal/repository"
	"go-clinic-backend/internal/service"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/jwt"
	"go-clinic-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	receptionistProfileRepo := repository.NewReceptionistProfileRepository()
	profileRepo := repository.NewProfileRepository(doctorProfileRepo, receptionistProfileRepo)
	specialtyRepo := repository.NewSpecialtyRepository()
	achievementRepo := repository.NewAchievementRepository()
	reviewRepo := repository.NewReviewRepository()
	timetableRepo := repository.NewTimetableRepository()
	patientRepo := repository.NewPatientRepository()
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, jwtService, redisClient)
	registrationUsecase := usecase.NewRegistrationUsecase(db, log, userRepo, doctorProfileRepo, receptionistProfileRepo, specialtyRepo, achievementRepo, auditService)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, profileRepo, doctorProfileRepo, receptionistProfileRepo, specialtyRepo, achievementRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorProfileRepo, specialtyRepo)
	reviewUsecase := usecase.NewReviewUsecase(db, log, doctorProfileRepo, reviewRepo, auditService)
	timetableUsecase := usecase.NewTimetableUsecase(db, log, doctorProfileRepo, timetableRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, patientRepo, doctorProfileRepo, profileRepo, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, profileRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, reviewUsecase, customValidator)
	timetableHandler := handler.NewTimetableHandler(timetableUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		registrationHandler,
		profileHandler,
		doctorHandler,
		timetableHandler,
		patientHandler,
		bookingHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

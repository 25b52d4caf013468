// Package bootstrap builds the application object graph.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kadirhan/alumniport/internal/app/controllers"
	appMigrations "github.com/kadirhan/alumniport/internal/app/migrations"
	appRepos "github.com/kadirhan/alumniport/internal/app/repositories"
	appRoutes "github.com/kadirhan/alumniport/internal/app/routes"
	appServices "github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/config"
	"github.com/kadirhan/alumniport/internal/db"
	appMiddleware "github.com/kadirhan/alumniport/internal/middleware"
	"github.com/kadirhan/alumniport/internal/pkg/assistant"
	pkgAuth "github.com/kadirhan/alumniport/internal/pkg/auth"
	"github.com/kadirhan/alumniport/internal/pkg/helpers"
	"github.com/kadirhan/alumniport/internal/pkg/logger"
	"github.com/kadirhan/alumniport/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService

	AuthService       *appServices.AuthService
	UserService       *appServices.UserService
	PostService       *appServices.PostService
	JobService        *appServices.JobService
	EventService      *appServices.EventService
	MentorshipService *appServices.MentorshipService
	AdminService      *appServices.AdminService
	ChatService       *appServices.ChatService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	PostController       *appControllers.PostController
	JobController        *appControllers.JobController
	EventController      *appControllers.EventController
	MentorshipController *appControllers.MentorshipController
	AdminController      *appControllers.AdminController
	ChatController       *appControllers.ChatController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the admin accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Seeding failure is not fatal; an operator can create the
		// accounts by hand.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	assistantClient, err := assistant.NewClient(assistant.Config{
		BaseURL: cfg.Assistant.BaseURL,
		Model:   cfg.Assistant.Model,
		Timeout: helpers.ParseDuration(cfg.Assistant.Timeout, 30*time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize assistant client: %w", err)
	}
	if assistantClient == nil {
		lgr.Info().Msg("Assistant backend not configured, chat endpoint disabled")
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository, deps.Repos.UserRepository, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.UserRepository, lgr)
	deps.ChatService = appServices.NewChatService(assistantClient, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.PostController,
		deps.JobController,
		deps.EventController,
		deps.MentorshipController,
		deps.AdminController,
		deps.ChatController,
		deps.AuthMiddleware,
	)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/relatecrm/backend/internal/adapter/handler"
	"github.com/relatecrm/backend/internal/adapter/repository"
	"github.com/relatecrm/backend/internal/infrastructure/cache"
	"github.com/relatecrm/backend/internal/infrastructure/database"
	httpmw "github.com/relatecrm/backend/internal/infrastructure/http/middleware"
	"github.com/relatecrm/backend/internal/usecase/auth"
	meetingUsecase "github.com/relatecrm/backend/internal/usecase/meeting"
	"github.com/relatecrm/backend/pkg/config"
	"github.com/relatecrm/backend/pkg/jwt"
	pkgvalidator "github.com/relatecrm/backend/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.Migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; manage schema with sql-migrate in CI/CD")
	}

	// Initialize session store; fall back to in-memory when Redis is down
	// so a cache outage does not take the API with it.
	log.Println("📦 Connecting to Redis...")
	var sessionStore auth.SessionStore
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, using in-memory session store: %v", err)
		sessionStore = cache.NewMemorySessionStore()
	} else {
		defer redisClient.Close()
		sessionStore = cache.NewRedisSessionStore(redisClient)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize JWT manager and session service
	log.Println("🔑 Initializing session service...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	sessionService := auth.NewSessionService(userRepo, jwtManager, sessionStore, logger)

	// Initialize meeting service
	log.Println("📅 Initializing meeting service...")
	meetingService := meetingUsecase.NewMeetingService(meetingRepo, userRepo, contactRepo, leadRepo)

	// Initialize handlers and routes
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	authHandler := handler.NewAuthHandler(sessionService, logger)
	authMiddleware := httpmw.EchoAuth(sessionService)

	router := handler.NewRouter(cfg, meetingHandler, authHandler, authMiddleware)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Server starting on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}

package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/auth"
	"github.com/spndy/spndy-api/internal/config"
	"github.com/spndy/spndy-api/internal/database"
	"github.com/spndy/spndy-api/internal/database/categories"
	"github.com/spndy/spndy-api/internal/database/entries"
	"github.com/spndy/spndy-api/internal/database/expenses"
	"github.com/spndy/spndy-api/internal/database/ledgers"
	"github.com/spndy/spndy-api/internal/database/reports"
	"github.com/spndy/spndy-api/internal/database/tours"
	"github.com/spndy/spndy-api/internal/database/users"
	http_controllers "github.com/spndy/spndy-api/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so no need to add it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting spndy API v%s", version)

	if cfg.Auth.AccessSecret == "" || cfg.Auth.RefreshSecret == "" {
		log.Fatalf("JWT_ACCESS_SECRET_KEY and JWT_REFRESH_SECRET_KEY must be set")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	userRepo := users.NewRepository(db.DB)
	categoryRepo := categories.NewRepository(db.DB)
	expenseRepo := expenses.NewRepository(db.DB)
	ledgerRepo := ledgers.NewRepository(db.DB)
	tourRepo := tours.NewRepository(db.DB)
	entryRepo := entries.NewRepository(db.DB)
	reportRepo := reports.NewRepository(db.DB)

	// Authentication
	tokenManager := auth.NewTokenManager(cfg.Auth)
	authService := auth.NewService(userRepo, tokenManager, cfg.Auth)
	authController := auth.NewController(authService, cfg.Auth)
	authMiddleware := auth.NewMiddleware(tokenManager, userRepo)

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		AuthController: authController,
		AuthMiddleware: authMiddleware,
		CategoryStore:  categoryRepo,
		ExpenseStore:   expenseRepo,
		LedgerStore:    ledgerRepo,
		TourStore:      tourRepo,
		EntryStore:     entryRepo,
		ReportStore:    reportRepo,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, nil)
}

// cmd/textbook-rsa-rest-api/main.go
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

	v1 "github.com/MGTheTrain/textbook-rsa/internal/api/rest/v1"
	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// empty CONFIG_PATH runs on defaults
	cfg, err := config.InitializeConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(cfg, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db             *gorm.DB
	keyPairService keys.KeyPairService
	cipherService  keys.CipherService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.Config, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	keyPairRepo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	processor, err := cryptography.NewTextbookRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	keyPairService, err := app.NewKeyPairService(keyPairRepo, processor, cfg.KeyStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair service: %w", err)
	}

	cipherService, err := app.NewCipherService(keyPairRepo, processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:             db,
		keyPairService: keyPairService,
		cipherService:  cipherService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.Config, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.keyPairService, deps.cipherService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

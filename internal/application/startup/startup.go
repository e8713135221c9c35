// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/container"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/email"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/database"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/store"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
	"github.com/luxeestates/luxegate-go/internal/presentation/http/server"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("LuxeGate starting up...")

	// Step 1: Channeled logging
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDirectory
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Channeled logging initialized", "directory", config.LogDirectory)

	if config.JWTSecret == "" {
		secret, err := security.GenerateSecureKey(64)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		config.JWTSecret = secret
		logger.Startup().Warn("JWT_SECRET not set, generated an ephemeral secret; admin and unlock tokens will not survive a restart")
	}

	perfTracker := performance.NewTracker()

	// Step 2: Open the persisted store
	driverName, dataSourceName := storeConnection()
	logger.Startup().Info("Opening persisted store", "driver", driverName)

	db, err := database.NewConnectionWithLogger(driverName, dataSourceName, logger)
	if err != nil {
		return fmt.Errorf("failed to open persisted store: %w", err)
	}
	defer db.Close()

	st, err := store.New(db, logger)
	if err != nil {
		return fmt.Errorf("failed to prepare persisted store: %w", err)
	}

	// Step 3: Operator notification email, optional
	var emailSvc email.Service
	if config.ResendAPIKey != "" {
		emailSvc, err = email.NewService()
		if err != nil {
			logger.Startup().Warn("Email service unavailable, notifications disabled", "error", err.Error())
			emailSvc = nil
		} else {
			logger.Startup().Info("Email notifications enabled", "recipient", config.NotifyEmailTo)
		}
	}

	// Step 4: Dependency injection container
	appContainer := container.NewContainer(logger, perfTracker, st, emailSvc)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 5: Hydrate working state from the store. Read failures degrade
	// to seed defaults inside Initialize, they never block startup.
	appContainer.StateService.Initialize()

	// Step 6: Background lead stream loop
	go appContainer.LeadStream.Run()
	logger.Startup().Info("Lead stream broadcaster started")

	// Step 7: HTTP server
	port := config.Port
	httpServer := server.New(port, appContainer)
	logger.Startup().Info("HTTP server initialized", "port", port)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// storeConnection picks the store backend: a remote libsql database when
// configured, the local sqlite file otherwise.
func storeConnection() (string, string) {
	if config.StoreDatabaseURL != "" {
		dsn := config.StoreDatabaseURL
		if config.StoreAuthToken != "" {
			dsn += "?authToken=" + config.StoreAuthToken
		}
		return "libsql", dsn
	}
	return "sqlite3", config.StorePath
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

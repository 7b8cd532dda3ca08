// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pullpane/pullpane-go/internal/application/container"
	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/infrastructure/caching"
	"github.com/pullpane/pullpane-go/internal/presentation/http/server"
	"github.com/pullpane/pullpane-go/pkg/config"
)

// seedDialogs are the dialog definitions registered at startup. Each exercises
// one pull direction against the demo stylesheet under web/preview.
var seedDialogs = []content.Dialog{
	{ID: "nav", Slug: "navigation", Title: "Navigation", ModuleName: "pp-nav", Direction: "left", Body: "Site navigation links live here."},
	{ID: "cart", Slug: "cart", Title: "Your Cart", ModuleName: "pp-cart", Direction: "right", Body: "Items you have added so far."},
	{ID: "notice", Slug: "notice", Title: "Heads Up", ModuleName: "pp-notice", Direction: "top", Body: "A short announcement banner."},
	{ID: "consent", Slug: "consent", Title: "Cookies", ModuleName: "pp-consent", Direction: "bottom", Body: "This site stores a session identifier."},
}

// Initialize performs the complete startup sequence and blocks until a
// shutdown signal arrives.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	// Step 1: Create dependency injection container
	appContainer, err := container.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}

	logger := appContainer.Logger
	logger.Startup().Info("Dependency injection container created")

	// Step 2: Seed the dialog registry
	for _, dialog := range seedDialogs {
		if err := appContainer.DialogService.Register(dialog); err != nil {
			return fmt.Errorf("failed to seed dialog registry: %w", err)
		}
	}
	logger.Startup().Info("Dialog registry seeded", "count", len(seedDialogs))

	// Step 3: Start background workers
	go caching.StartCleanupRoutine(ctx, appContainer.CacheManager, config.CleanupInterval, logger)
	go appContainer.Broadcaster.Run()
	logger.Startup().Info("Background workers started")

	// Step 4: Start HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"dialogs", len(seedDialogs),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

// setupGinMode configures the gin runtime mode from the environment.
func setupGinMode() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/badges/infra/initializer"
	"github.com/amirasaad/badges/pkg/app"
	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/webapi"
	log "github.com/charmbracelet/log"
)

// @title Badges API
// @version 1.0.0
// @description Funding badge SVGs for GitHub issues
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := slog.Default()
	if deps.LimiterStorage != nil {
		defer func() {
			if err := deps.LimiterStorage.Close(); err != nil {
				logger.Warn("Failed to close limiter storage", "error", err)
			}
		}()
	}

	// Create the application and the Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"upstream", cfg.Upstream.ApiUrl,
	)

	return fiberApp.Listen(addr)
}

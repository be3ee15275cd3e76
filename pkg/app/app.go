package app

import (
	"log/slog"

	"github.com/amirasaad/badges/pkg/asset"
	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/pkg/provider"
	badgesvc "github.com/amirasaad/badges/pkg/service/badge"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the badge service is built from
type Deps struct {
	MetadataProvider provider.BadgeMetadata
	FontLoader       asset.FontLoader
	Renderer         badgesvc.Renderer
	// LimiterStorage is nil when rate limiter counters stay in process.
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
}

type App struct {
	Deps         *Deps
	Config       *config.App
	BadgeService *badgesvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		BadgeService: badgesvc.New(
			deps.MetadataProvider,
			deps.FontLoader,
			deps.Renderer,
			cfg.Assets.FontName,
			deps.Logger,
		),
	}
}

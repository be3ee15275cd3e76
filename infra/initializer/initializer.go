package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	infra_asset "github.com/amirasaad/badges/infra/asset"
	infra_cache "github.com/amirasaad/badges/infra/cache"
	infra_provider "github.com/amirasaad/badges/infra/provider"
	"github.com/amirasaad/badges/pkg/app"
	"github.com/amirasaad/badges/pkg/asset"
	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/pkg/render"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	return InitializeDependenciesWithLogOutput(cfg, os.Stdout)
}

// InitializeDependenciesWithLogOutput is InitializeDependencies with the
// process logger writing to w.
func InitializeDependenciesWithLogOutput(cfg *config.App, w io.Writer) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(w, cfg.Log)
	deps.Logger = logger

	deps.MetadataProvider = infra_provider.NewFundingAPIProvider(cfg.Upstream, logger)
	deps.FontLoader = newFontLoader(cfg.Assets, logger)
	deps.Renderer = render.New(cfg.Assets.FontFamily, logger)

	if cfg.Redis.URL != "" {
		storage, err := infra_cache.NewRedisStorage(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter storage: %w", err)
		}
		deps.LimiterStorage = storage
		logger.Info("Rate limiter uses redis storage", "prefix", cfg.Redis.KeyPrefix)
	}

	logger.Info("Dependencies initialized",
		"metadata_provider", deps.MetadataProvider.Name(),
		"assets_dir", cfg.Assets.Dir,
		"font", cfg.Assets.FontName,
		"font_cache", cfg.Assets.CacheFonts,
	)
	return deps, nil
}

func newFontLoader(cfg *config.Assets, logger *slog.Logger) asset.FontLoader {
	var loader asset.FontLoader = infra_asset.NewDirLoader(cfg.Dir, logger)
	if cfg.CacheFonts {
		loader = infra_asset.NewCachedLoader(loader, infra_cache.NewMemoryCache(), logger)
	}
	return loader
}

package asset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/badges/pkg/asset"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/cache"
	"golang.org/x/sync/singleflight"
)

// CachedLoader is a read-through cache in front of another FontLoader.
// Concurrent misses for one name share a single read. Errors are not cached.
type CachedLoader struct {
	next   asset.FontLoader
	cache  cache.ByteCache
	group  singleflight.Group
	logger *slog.Logger
}

// NewCachedLoader wraps next with store.
func NewCachedLoader(next asset.FontLoader, store cache.ByteCache, logger *slog.Logger) *CachedLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedLoader{next: next, cache: store, logger: logger}
}

// LoadFont returns the cached font or reads it once through next.
// The shared read is detached from the caller's cancellation so one
// canceled request cannot fail the others waiting on it.
func (l *CachedLoader) LoadFont(ctx context.Context, name string) ([]byte, error) {
	if data, ok := l.cache.Get(name); ok {
		return data, nil
	}

	readCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(name, func() (any, error) {
		if data, ok := l.cache.Get(name); ok {
			return data, nil
		}
		data, err := l.next.LoadFont(readCtx, name)
		if err != nil {
			return nil, err
		}
		l.cache.Set(name, data)
		l.logger.Info("Font cached", "name", name, "bytes", len(data))
		if cached, ok := l.cache.Get(name); ok {
			return cached, nil
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %w", badge.ErrAssetNotFound, name, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			l.logger.Debug("Font load shared", "name", name)
		}
		return res.Val.([]byte), nil
	}
}

var _ asset.FontLoader = (*CachedLoader)(nil)

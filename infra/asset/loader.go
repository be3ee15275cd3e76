package asset

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/amirasaad/badges/pkg/asset"
	"github.com/amirasaad/badges/pkg/domain/badge"
)

// DirLoader reads fonts from a fixed asset directory.
type DirLoader struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewDirLoader creates a loader rooted at dir on the local filesystem.
func NewDirLoader(dir string, logger *slog.Logger) *DirLoader {
	return NewFSLoader(os.DirFS(dir), logger)
}

// NewFSLoader creates a loader over an arbitrary filesystem.
func NewFSLoader(fsys fs.FS, logger *slog.Logger) *DirLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirLoader{fsys: fsys, logger: logger}
}

// LoadFont reads name from the asset directory. Names that would escape the
// directory are treated as missing.
func (l *DirLoader) LoadFont(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", badge.ErrAssetNotFound, name, err)
	}
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: invalid font name %q", badge.ErrAssetNotFound, name)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		l.logger.Error("Failed to read font", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", badge.ErrAssetNotFound, name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", badge.ErrAssetNotFound, name)
	}
	l.logger.Debug("Font loaded", "name", name, "bytes", len(data))
	return data, nil
}

var _ asset.FontLoader = (*DirLoader)(nil)

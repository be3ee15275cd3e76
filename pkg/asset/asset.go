// Package asset declares how the badge pipeline obtains static files.
package asset

import "context"

// FontLoader returns the raw bytes of a font file by name.
// Implementations fail with badge.ErrAssetNotFound when the file is
// missing or unreadable.
type FontLoader interface {
	LoadFont(ctx context.Context, name string) ([]byte, error)
}

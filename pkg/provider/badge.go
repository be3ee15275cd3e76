package provider

import (
	"context"

	"github.com/amirasaad/badges/pkg/domain/badge"
)

// BadgeMetadata defines the interface for upstream funding badge providers.
type BadgeMetadata interface {
	// FetchBadge requests the badge metadata for one GitHub issue.
	FetchBadge(ctx context.Context, org, repo, number string) (*badge.Metadata, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}

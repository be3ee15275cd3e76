// Package badge runs the badge pipeline for one request:
// fetch metadata, load the font, render.
package badge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/badges/pkg/asset"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/provider"
	"github.com/amirasaad/badges/pkg/render"
)

// Renderer renders metadata into an SVG.
type Renderer interface {
	Render(meta *badge.Metadata, fontData []byte, opts render.Options) (*badge.Rendered, error)
}

// Result is the outcome of Generate. On failure Badge is nil and State is StateFailed.
type Result struct {
	Badge    *badge.Rendered
	Metadata *badge.Metadata
	State    State
	// FailedIn is the state the pipeline was in when it failed.
	FailedIn State
}

// Service provides the badge generation pipeline.
type Service struct {
	metadata provider.BadgeMetadata
	fonts    asset.FontLoader
	renderer Renderer
	fontName string
	logger   *slog.Logger
}

// New creates a new badge service.
func New(
	metadata provider.BadgeMetadata,
	fonts asset.FontLoader,
	renderer Renderer,
	fontName string,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		metadata: metadata,
		fonts:    fonts,
		renderer: renderer,
		fontName: fontName,
		logger:   logger,
	}
}

// run tracks the state of one pipeline execution.
type run struct {
	state  State
	logger *slog.Logger
}

func (r *run) to(s State) {
	if !r.state.next(s) {
		panic(fmt.Sprintf("badge: illegal transition %s -> %s", r.state, s))
	}
	r.logger.Debug("Badge pipeline transition", "from", r.state.String(), "to", s.String())
	r.state = s
}

// Generate runs the pipeline sequentially. Each stage's error is returned
// unchanged so callers can classify it with errors.Is.
func (s *Service) Generate(ctx context.Context, req badge.Request) (*Result, error) {
	start := time.Now()
	logger := s.logger.With(
		"org", req.Org,
		"repo", req.Repo,
		"number", req.Number,
		"debug", req.Debug,
	)
	r := &run{state: StateIdle, logger: logger}
	res := &Result{}

	fail := func(err error) (*Result, error) {
		res.FailedIn = r.state
		r.to(StateFailed)
		res.State = r.state
		logger.Error("Badge generation failed",
			"stage", res.FailedIn.String(),
			"duration", time.Since(start),
			"error", err,
		)
		return res, err
	}

	r.to(StateFetchingMetadata)
	meta, err := s.metadata.FetchBadge(ctx, req.Org, req.Repo, req.Number)
	if err != nil {
		return fail(fmt.Errorf("fetch badge metadata from %s: %w", s.metadata.Name(), err))
	}
	res.Metadata = meta

	r.to(StateRendering)
	fontData, err := s.fonts.LoadFont(ctx, s.fontName)
	if err != nil {
		return fail(fmt.Errorf("load font %s: %w", s.fontName, err))
	}
	rendered, err := s.renderer.Render(meta, fontData, render.Options{Debug: req.Debug})
	if err != nil {
		return fail(fmt.Errorf("render badge: %w", err))
	}

	r.to(StateResponded)
	res.Badge = rendered
	res.State = r.state
	logger.Info("Badge generated",
		"badge_type", meta.BadgeType,
		"width", rendered.Width,
		"height", rendered.Height,
		"show_amount", badge.ShowAmount(meta),
		"duration", time.Since(start),
	)
	return res, nil
}

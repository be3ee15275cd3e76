package badge

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/amirasaad/badges/pkg/domain/badge"
	badgesvc "github.com/amirasaad/badges/pkg/service/badge"
	"github.com/amirasaad/badges/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the badge endpoints.
//
// Routes:
//   - GET /github/:org/:repo/issues/:number/backing.svg : Funding badge for an issue.
func Routes(app *fiber.App, badgeSvc *badgesvc.Service, logger *slog.Logger) {
	app.Get("/github/:org/:repo/issues/:number/"+badgeFile, Backing(badgeSvc, logger))
}

const (
	badgePrefix = "/github/"
	badgeFile   = "backing.svg"
)

// IsBadgePath reports whether path addresses a badge image, matched or not.
// Failures on these paths must still answer with an SVG.
func IsBadgePath(path string) bool {
	return strings.HasPrefix(path, badgePrefix) && strings.HasSuffix(path, "/"+badgeFile)
}

// Backing returns a Fiber handler that renders the funding badge of an issue.
// Every response carries an SVG body: the badge on success and the transparent
// fallback on failure, with the status code mapped from the failure.
// @Summary Funding badge for an issue
// @Description Fetches the funding metadata of a GitHub issue and renders it as an SVG badge. Every failure answers with a transparent 1x1 SVG and the mapped status code.
// @Tags badges
// @Produce image/svg+xml
// @Param org path string true "GitHub organization"
// @Param repo path string true "GitHub repository"
// @Param number path string true "Issue number"
// @Param debug query string false "1 draws the layout debug overlay"
// @Success 200 {file} file "Rendered badge"
// @Failure 400 {file} file "Invalid request, fallback SVG"
// @Failure 429 {file} file "Too many requests, fallback SVG"
// @Failure 500 {file} file "Font or render failure, fallback SVG"
// @Failure 502 {file} file "Upstream unavailable or invalid, fallback SVG"
// @Router /github/{org}/{repo}/issues/{number}/backing.svg [get]
func Backing(badgeSvc *badgesvc.Service, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		req, err := parseRequest(c)
		if err != nil {
			logger.Warn("Invalid badge request", "path", c.Path(), "error", err)
			return common.FallbackSVG(c, err)
		}

		res, err := badgeSvc.Generate(c.UserContext(), *req)
		if err != nil {
			status := common.ErrorToStatusCode(err)
			logger.Error("Serving fallback badge",
				"org", req.Org,
				"repo", req.Repo,
				"number", req.Number,
				"stage", res.FailedIn.String(),
				"status", status,
				"upstream_status", upstreamStatus(err),
			)
			return common.FallbackSVG(c, err)
		}
		return common.SVGResponse(c, res.Badge.SVG)
	}
}

func parseRequest(c *fiber.Ctx) (*badge.Request, error) {
	req := &badge.Request{Debug: badge.ParseDebug(c.Query("debug"))}
	for _, p := range []struct {
		name string
		dst  *string
	}{
		{"org", &req.Org},
		{"repo", &req.Repo},
		{"number", &req.Number},
	} {
		// params are matched on the raw path so an escaped "/" stays inside its segment
		v, err := url.PathUnescape(c.Params(p.name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", badge.ErrInvalidRequest, p.name, err)
		}
		*p.dst = strings.TrimSpace(v)
	}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func upstreamStatus(err error) int {
	var ue *badge.UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}

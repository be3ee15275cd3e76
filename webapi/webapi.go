// Package webapi provides the HTTP surface of the badge service.
// It is organized into sub-packages:
// - badge: SVG badge endpoints
// - common: response envelopes, problem details and status mapping
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/badges/pkg/app"
	badgeweb "github.com/amirasaad/badges/webapi/badge"
	"github.com/amirasaad/badges/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "github.com/amirasaad/badges/cmd/server/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "badges",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// badges are embedded as images, so they never get a JSON error body
			if badgeweb.IsBadgePath(c.Path()) {
				return common.FallbackSVG(c, err)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		Storage:    app.Deps.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			if badgeweb.IsBadgePath(c.Path()) {
				return common.FallbackSVG(c, fiber.ErrTooManyRequests)
			}
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	health := Health(app)
	fiberApp.Get("/", health)
	fiberApp.Get("/healthz", health)

	badgeweb.Routes(fiberApp, app.BadgeService, app.Deps.Logger)
	return fiberApp
}

// Health returns the status handler served on / and /healthz.
// @Summary Service status
// @Description Reports that the service is up and which metadata provider it uses.
// @Tags health
// @Produce json
// @Success 200 {object} common.Response "Service is running"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router / [get]
// @Router /healthz [get]
func Health(app *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Badge service is running", fiber.Map{
			"env":               app.Config.Env,
			"metadata_provider": app.Deps.MetadataProvider.Name(),
		})
	}
}

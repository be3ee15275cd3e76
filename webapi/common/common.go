package common

import (
	"errors"

	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/render"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
// The optional args are a detail string and an explicit status code.
// Without a status the code is derived from err with ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := ErrorToStatusCode(err)
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			pd.Detail = v
		default:
			pd.Errors = v
		}
	}
	pd.Status = status
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps badge errors to HTTP status codes.
// Failures that are not part of the badge taxonomy are internal errors.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.Is(err, badge.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, badge.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, badge.ErrInvalidResponse):
		return fiber.StatusBadGateway
	case errors.Is(err, badge.ErrAssetNotFound):
		return fiber.StatusInternalServerError
	case errors.Is(err, badge.ErrRender):
		return fiber.StatusInternalServerError
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// SVGResponse writes a rendered badge.
func SVGResponse(c *fiber.Ctx, svg []byte) error {
	c.Set(fiber.HeaderContentType, badge.ContentType)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Status(fiber.StatusOK).Send(svg)
}

// FallbackSVG writes the transparent placeholder with the status mapped from err.
func FallbackSVG(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderContentType, badge.ContentType)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(ErrorToStatusCode(err)).Send(render.Fallback())
}

// ValidateStruct runs the validator tags on v. Failures wrap badge.ErrInvalidRequest.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(badge.ErrInvalidRequest, err)
	}
	return nil
}

package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/render"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid request", badge.ErrInvalidRequest, fiber.StatusBadRequest},
		{"upstream unavailable", badge.ErrUpstreamUnavailable, fiber.StatusBadGateway},
		{"upstream status", &badge.UpstreamError{URL: "http://x", StatusCode: 503}, fiber.StatusBadGateway},
		{"invalid response", fmt.Errorf("fetch: %w", badge.ErrInvalidResponse), fiber.StatusBadGateway},
		{"asset not found", fmt.Errorf("load font: %w", badge.ErrAssetNotFound), fiber.StatusInternalServerError},
		{"render", fmt.Errorf("render: %w", badge.ErrRender), fiber.StatusInternalServerError},
		{"fiber error", fiber.ErrNotFound, fiber.StatusNotFound},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
		{"nil", nil, fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func TestFallbackSVG(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FallbackSVG(c, badge.ErrUpstreamUnavailable)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, badge.ContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, render.Fallback(), body)
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Too Many Requests", errors.New("rate limit exceeded"), fiber.StatusTooManyRequests)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Invalid request", badge.ErrInvalidRequest, "number is required")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, fiber.StatusTooManyRequests, pd.Status)
	assert.Equal(t, "rate limit exceeded", pd.Detail)
	assert.Equal(t, "/boom", pd.Instance)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/bad", nil))
	require.NoError(t, err)
	pd = ProblemDetails{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, fiber.StatusBadRequest, pd.Status)
	assert.Equal(t, "number is required", pd.Detail)
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(badge.Request{Org: "acme", Repo: "widgets"})
	require.Error(t, err)
	assert.ErrorIs(t, err, badge.ErrInvalidRequest)

	assert.NoError(t, ValidateStruct(badge.Request{Org: "acme", Repo: "widgets", Number: "42"}))
}

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/provider"
	"github.com/go-playground/validator/v10"
)

const defaultMaxBodyBytes = 64 << 10

// FundingAPIProvider implements the BadgeMetadata interface against the
// funding API: GET {base}/api/v1/integrations/github/{org}/{repo}/issues/{number}/badges/funding
type FundingAPIProvider struct {
	baseURL      string
	httpClient   *http.Client
	validate     *validator.Validate
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewFundingAPIProvider creates a new funding API provider using config
func NewFundingAPIProvider(cfg *config.Upstream, logger *slog.Logger) *FundingAPIProvider {
	return NewFundingAPIProviderWithClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
}

// NewFundingAPIProviderWithClient creates a provider that sends requests through client.
func NewFundingAPIProviderWithClient(
	cfg *config.Upstream,
	client *http.Client,
	logger *slog.Logger,
) *FundingAPIProvider {
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &FundingAPIProvider{
		baseURL:      strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient:   client,
		validate:     validator.New(),
		logger:       logger,
		maxBodyBytes: maxBody,
	}
}

// Endpoint builds the upstream URL for an issue. Identifiers are path-escaped
// but otherwise passed through unvalidated.
func (p *FundingAPIProvider) Endpoint(org, repo, number string) string {
	return fmt.Sprintf(
		"%s/api/v1/integrations/github/%s/%s/issues/%s/badges/funding",
		p.baseURL,
		url.PathEscape(org),
		url.PathEscape(repo),
		url.PathEscape(number),
	)
}

// FetchBadge performs a single GET without retries.
func (p *FundingAPIProvider) FetchBadge(
	ctx context.Context,
	org, repo, number string,
) (*badge.Metadata, error) {
	endpoint := p.Endpoint(org, repo, number)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &badge.UpstreamError{URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Warn("Funding API request failed",
			"url", endpoint,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, &badge.UpstreamError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.logger.Warn("Funding API returned non-success status",
			"url", endpoint,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, &badge.UpstreamError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodyBytes+1))
	if err != nil {
		// the body stream broke mid-read, which is a transport failure
		return nil, &badge.UpstreamError{URL: endpoint, Err: err}
	}
	if int64(len(body)) > p.maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", badge.ErrInvalidResponse, p.maxBodyBytes)
	}

	meta, err := p.decode(body)
	if err != nil {
		p.logger.Warn("Funding API returned invalid badge", "url", endpoint, "error", err)
		return nil, err
	}

	p.logger.Debug("Funding badge fetched",
		"url", endpoint,
		"badge_type", meta.BadgeType,
		"width", meta.Width,
		"height", meta.Height,
		"has_amount", meta.Amount != nil,
		"duration", time.Since(start),
	)
	return meta, nil
}

func (p *FundingAPIProvider) decode(body []byte) (*badge.Metadata, error) {
	var meta badge.Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", badge.ErrInvalidResponse, err)
	}
	meta.BadgeType = strings.TrimSpace(meta.BadgeType)
	if err := p.validate.Struct(&meta); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: field %s failed %q", badge.ErrInvalidResponse, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %w", badge.ErrInvalidResponse, err)
	}
	return &meta, nil
}

// Name returns the provider's name
func (p *FundingAPIProvider) Name() string {
	return "funding-api"
}

// Ensure FundingAPIProvider implements provider.BadgeMetadata
var _ provider.BadgeMetadata = (*FundingAPIProvider)(nil)

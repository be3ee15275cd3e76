package badge

import (
	"errors"
	"fmt"
)

// Badge pipeline errors. Each failure of a stage wraps exactly one of these.
var (
	// ErrAssetNotFound is returned when a font or other static asset is missing or unreadable.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUpstreamUnavailable is returned when the funding API cannot be reached
	// or answers with a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInvalidResponse is returned when the funding API body is malformed or
	// misses required fields.
	ErrInvalidResponse = errors.New("invalid upstream response")

	// ErrRender is returned when the layout engine cannot produce an SVG.
	ErrRender = errors.New("render error")

	// ErrInvalidRequest is returned when the inbound request lacks an identifier.
	ErrInvalidRequest = errors.New("invalid badge request")
)

// UpstreamError records how a call to the funding API failed.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrUpstreamUnavailable, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUpstreamUnavailable, e.URL, e.Err)
}

// Unwrap exposes both the sentinel and the transport cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Err}
}

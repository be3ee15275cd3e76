// Package badge holds the value types that flow through one badge request:
// the typed inbound request, the metadata fetched from the funding API and
// the rendered SVG. None of them outlive the request that created them.
package badge

import (
	"strings"
)

// TypeFunding is the only visual template currently implemented.
const TypeFunding = "funding"

// ContentType is the MIME type of every badge response, including fallbacks.
const ContentType = "image/svg+xml"

// Amount is a raised amount in the currency's smallest unit (e.g. cents).
type Amount struct {
	Currency string `json:"currency" validate:"required,len=3,alpha"`
	Amount   int64  `json:"amount" validate:"gte=0"`
}

// Metadata describes the badge to render for one issue.
// Invariants: Width > 0, Height > 0, BadgeType non-empty.
type Metadata struct {
	BadgeType string  `json:"badge_type" validate:"required"`
	Width     int     `json:"width" validate:"gt=0"`
	Height    int     `json:"height" validate:"gt=0"`
	Amount    *Amount `json:"amount"`
}

// ShowAmount reports whether the amount slot is visible.
func ShowAmount(m *Metadata) bool {
	return m != nil && m.Amount != nil
}

// Rendered is a finished SVG document.
type Rendered struct {
	SVG    []byte
	Width  int
	Height int
}

// Request is the typed form of an inbound badge request.
type Request struct {
	Org    string `validate:"required"`
	Repo   string `validate:"required"`
	Number string `validate:"required"`
	Debug  bool
}

// ParseDebug turns the raw debug query value into a flag.
// Only "1" enables debug rendering; every other value disables it.
func ParseDebug(raw string) bool {
	return strings.TrimSpace(raw) == "1"
}

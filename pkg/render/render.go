// Package render turns badge metadata into an SVG document.
//
// Text is measured with the same font that is embedded into the document,
// so the layout holds when the SVG is displayed through an <img> tag.
package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	svg "github.com/ajstarks/svgo"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/money"
)

// Options tweak a single render.
type Options struct {
	// Debug draws the layout boxes on top of the badge.
	Debug bool
}

const (
	defaultLabel  = "Fund this issue"
	defaultAction = "Fund"
	raisedSuffix  = " raised"
)

const stylesheet = `.panel { fill: #FFFFFF; stroke: #E5E7EB; stroke-width: 1; }
.action { fill: #4667CA; }
.action-text { fill: #FFFFFF; }
.label { fill: #181A1F; }
.amount { fill: #6B7280; }`

// Renderer renders badges with a registry of templates keyed by badge type.
type Renderer struct {
	family    string
	mu        sync.RWMutex
	templates map[string]Template
	fallback  Template
	logger    *slog.Logger
}

// New creates a Renderer that embeds fonts under the CSS family name.
// The funding template is registered and used for unknown badge types.
func New(family string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	family = strings.NewReplacer("'", "", `"`, "", ";", "").Replace(family)
	if family == "" {
		family = "Inter"
	}
	funding := FundingTemplate{}
	return &Renderer{
		family:    family,
		templates: map[string]Template{funding.Name(): funding},
		fallback:  funding,
		logger:    logger,
	}
}

// Register adds or replaces the template for its badge type.
func (r *Renderer) Register(t Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.Name()] = t
}

func (r *Renderer) template(badgeType string) Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.templates[badgeType]; ok {
		return t
	}
	r.logger.Warn("Unknown badge type, using default template",
		"badge_type", badgeType,
		"template", r.fallback.Name(),
	)
	return r.fallback
}

// Render produces an SVG of exactly meta.Width x meta.Height.
func (r *Renderer) Render(meta *badge.Metadata, fontData []byte, opts Options) (*badge.Rendered, error) {
	if meta == nil {
		return nil, fmt.Errorf("%w: missing metadata", badge.ErrRender)
	}
	if meta.Width <= 0 || meta.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", badge.ErrRender, meta.Width, meta.Height)
	}

	m, err := parseFont(fontData)
	if err != nil {
		return nil, err
	}

	content, err := contentFor(meta)
	if err != nil {
		return nil, err
	}

	tpl := r.template(meta.BadgeType)
	frame := Frame{Width: float64(meta.Width), Height: float64(meta.Height), m: m}
	elements := tpl.Layout(frame, content)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(meta.Width, meta.Height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, meta.Width, meta.Height),
		fmt.Sprintf(`data-badge-type="%s"`, tpl.Name()),
		fmt.Sprintf(`data-show-amount="%t"`, content.ShowAmount),
	)
	canvas.Title(content.title())
	canvas.Def()
	canvas.Style("text/css", fontFaceCSS(r.family, fontData), stylesheet)
	canvas.DefEnd()

	for _, el := range elements {
		draw(canvas, m, el)
	}
	if opts.Debug {
		drawDebugOverlay(canvas, elements)
	}
	canvas.End()

	r.logger.Debug("Badge rendered",
		"template", tpl.Name(),
		"width", meta.Width,
		"height", meta.Height,
		"show_amount", content.ShowAmount,
		"debug", opts.Debug,
		"bytes", buf.Len(),
	)

	return &badge.Rendered{
		SVG:    buf.Bytes(),
		Width:  meta.Width,
		Height: meta.Height,
	}, nil
}

func contentFor(meta *badge.Metadata) (Content, error) {
	c := Content{
		Label:      defaultLabel,
		Action:     defaultAction,
		ShowAmount: badge.ShowAmount(meta),
	}
	if c.ShowAmount {
		amt, err := money.NewFromSmallestUnit(meta.Amount.Amount, meta.Amount.Currency)
		if err != nil {
			return Content{}, fmt.Errorf("%w: amount: %w", badge.ErrRender, err)
		}
		c.AmountText = amt.Display() + raisedSuffix
	}
	return c, nil
}

func (c Content) title() string {
	if c.ShowAmount {
		return c.Label + " (" + c.AmountText + ")"
	}
	return c.Label
}

func draw(canvas *svg.SVG, m *metrics, el Element) {
	x, y, w, h := px(el.X), px(el.Y), px(el.W), px(el.H)
	class := fmt.Sprintf(`class="%s"`, el.Class)
	switch el.Kind {
	case kindPanel, kindButton:
		rx := px(el.Radius)
		canvas.Roundrect(x, y, w, h, rx, rx, class)
	case kindText:
		if el.Name == "amount" {
			canvas.Gid("amount-slot")
			defer canvas.Gend()
		}
		if el.Size <= 0 {
			return
		}
		base := px(m.baseline(el.Y, el.H, el.Size))
		anchor := ""
		tx := x
		if el.Class == "action-text" {
			tx = x + w/2
			anchor = "text-anchor:middle;"
		}
		canvas.Text(tx, base, el.Text, class, fmt.Sprintf("%sfont-size:%.1fpx", anchor, el.Size))
	}
}

func drawDebugOverlay(canvas *svg.SVG, elements []Element) {
	canvas.Gid("debug-overlay")
	for _, el := range elements {
		canvas.Rect(px(el.X), px(el.Y), px(el.W), px(el.H),
			fmt.Sprintf(`data-debug-box="%s"`, el.Name),
			"fill:none;stroke:#FF0000;stroke-width:1;stroke-dasharray:2,2",
		)
	}
	canvas.Gend()
}

func px(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}

var fallbackSVG = sync.OnceValue(func() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(1, 1, `viewBox="0 0 1 1"`)
	canvas.End()
	return buf.Bytes()
})

// Fallback returns a 1x1 transparent SVG. Callers must not modify it.
func Fallback() []byte {
	return fallbackSVG()
}

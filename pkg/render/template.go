package render

import "math"

const minFontSize = 4.0

// Element kinds drawn by the renderer.
const (
	kindPanel  = "panel"
	kindButton = "button"
	kindText   = "text"
)

// Element is one laid out box on the badge canvas.
type Element struct {
	Name  string
	Kind  string
	X, Y  float64
	W, H  float64
	Text  string
	Size  float64
	Class string
	// Radius applies to panel and button boxes.
	Radius float64
}

// Content is what a template puts on the badge.
type Content struct {
	Label      string
	Action     string
	ShowAmount bool
	AmountText string
}

// Frame is the canvas a template lays out into.
type Frame struct {
	Width, Height float64
	m             *metrics
}

// Fit exposes text fitting to templates.
func (f Frame) Fit(text string, maxW, maxH, maxSize float64) float64 {
	return f.m.fit(text, maxW, maxH, maxSize)
}

// TextWidth measures text at size.
func (f Frame) TextWidth(text string, size float64) float64 {
	return f.m.width(text, size)
}

// Template lays out one visual variant of the badge.
type Template interface {
	Name() string
	Layout(f Frame, c Content) []Element
}

// FundingTemplate is the GitHub issue funding badge: a rounded panel with a
// label, an optional "raised" amount line and a call-to-action pill.
type FundingTemplate struct{}

func (FundingTemplate) Name() string { return "funding" }

func (FundingTemplate) Layout(f Frame, c Content) []Element {
	w, h := f.Width, f.Height
	pad := math.Max(1, math.Round(math.Min(w, h)*0.15))
	radius := math.Min(h/2, 8)

	elements := []Element{{
		Name: "panel", Kind: kindPanel, Class: "panel",
		X: 0.5, Y: 0.5, W: w - 1, H: h - 1, Radius: radius,
	}}

	innerH := h - 2*pad
	if innerH <= 0 || w-2*pad <= 0 {
		return elements
	}

	// pill: text sized to about half the inner height, padded horizontally
	actionSize := f.Fit(c.Action, w-4*pad, innerH*0.5, innerH*0.5)
	pillW := 0.0
	if actionSize > 0 {
		pillW = math.Ceil(f.TextWidth(c.Action, actionSize) + 2*pad)
	}
	if pillW > w-2*pad {
		pillW = 0
		actionSize = 0
	}
	if pillW > 0 {
		pillX := w - pad - pillW
		elements = append(elements,
			Element{
				Name: "action", Kind: kindButton, Class: "action",
				X: pillX, Y: pad, W: pillW, H: innerH, Radius: math.Min(innerH/2, 6),
			},
			Element{
				Name: "action-text", Kind: kindText, Class: "action-text",
				X: pillX + pad, Y: pad, W: pillW - 2*pad, H: innerH,
				Text: c.Action, Size: actionSize,
			},
		)
	}

	leftW := w - 2*pad
	if pillW > 0 {
		leftW -= pillW + pad
	}
	if leftW <= 0 {
		return elements
	}

	labelH := innerH
	if c.ShowAmount {
		labelH = math.Round(innerH * 0.55)
	}
	if size := f.Fit(c.Label, leftW, labelH, innerH*0.45); size > 0 {
		elements = append(elements, Element{
			Name: "label", Kind: kindText, Class: "label",
			X: pad, Y: pad, W: leftW, H: labelH,
			Text: c.Label, Size: size,
		})
	}

	if c.ShowAmount {
		amountH := innerH - labelH
		size := f.Fit(c.AmountText, leftW, amountH, innerH*0.35)
		// the slot is part of the layout even when the figure cannot be set legibly
		elements = append(elements, Element{
			Name: "amount", Kind: kindText, Class: "amount",
			X: pad, Y: pad + labelH, W: leftW, H: amountH,
			Text: c.AmountText, Size: size,
		})
	}
	return elements
}

package render

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// refSize is the point size used for measuring; widths scale linearly from it.
const refSize = 100.0

// metrics measures text set in one parsed font.
type metrics struct {
	font    *truetype.Font
	ref     font.Face
	ascent  float64 // per point of font size
	descent float64
}

func parseFont(data []byte) (*metrics, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", badge.ErrRender)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %w", badge.ErrRender, err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: refSize, DPI: 72, Hinting: font.HintingNone})
	m := face.Metrics()
	return &metrics{
		font:    f,
		ref:     face,
		ascent:  float64(m.Ascent) / 64 / refSize,
		descent: float64(m.Descent) / 64 / refSize,
	}, nil
}

// width returns the advance width of text at size points.
func (m *metrics) width(text string, size float64) float64 {
	adv := font.MeasureString(m.ref, text)
	return float64(adv) / 64 / refSize * size
}

// fit returns the largest size at which text fits in maxW x maxH,
// capped at maxSize. Zero means nothing legible fits.
func (m *metrics) fit(text string, maxW, maxH, maxSize float64) float64 {
	if text == "" || maxW <= 0 || maxH <= 0 {
		return 0
	}
	size := math.Min(maxSize, maxH/(m.ascent+m.descent))
	if w := m.width(text, size); w > maxW {
		size = size * maxW / w
	}
	size = math.Floor(size*2) / 2
	if size < minFontSize {
		return 0
	}
	return size
}

// baseline returns the y coordinate that vertically centres a line of
// the given size inside a box starting at top with height h.
func (m *metrics) baseline(top, h, size float64) float64 {
	return top + (h+(m.ascent-m.descent)*size)/2
}

// fontFaceCSS embeds the font so the SVG renders the same inside <img>.
func fontFaceCSS(family string, data []byte) string {
	var b strings.Builder
	b.WriteString("@font-face { font-family: '")
	b.WriteString(family)
	b.WriteString("'; font-weight: 400; font-style: normal; src: url(data:font/ttf;base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	b.WriteString(") format('truetype'); }\n")
	fmt.Fprintf(&b, "text { font-family: '%s', sans-serif; font-weight: 400; }", family)
	return b.String()
}

package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/lifeweeks/pkg/layout"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 1.0, one pixel per unit).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterizes the layout on a page-sized canvas filled with the
// layout's fill color.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Ceil(l.Config.PageWidth * r.scale))
	h := int(math.Ceil(l.Config.PageHeight * r.scale))
	dc := gg.NewContext(w, h)

	fill := l.Config.FillColor
	dc.SetRGB(fill.R, fill.G, fill.B)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	for _, row := range l.Rows {
		for _, b := range row.Boxes {
			dc.DrawRectangle(b.X, b.Y, b.Size, b.Size)
			dc.SetRGB(fill.R, fill.G, fill.B)
			dc.FillPreserve()
			dc.SetRGB(b.Stroke.R, b.Stroke.G, b.Stroke.B)
			dc.SetLineWidth(b.LineWidth)
			dc.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

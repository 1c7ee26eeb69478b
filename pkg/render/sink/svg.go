package sink

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/lifeweeks/pkg/layout"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	background bool
}

func WithSVGTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }
func WithBackground() SVGOption          { return func(r *svgRenderer) { r.background = true } }

func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	cfg := l.Config
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		cfg.PageWidth, cfg.PageHeight, cfg.PageWidth, cfg.PageHeight)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	if r.background {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", cfg.FillColor.Hex())
	}

	fill := cfg.FillColor.Hex()
	for _, row := range l.Rows {
		renderRow(&buf, row, fill)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRow(buf *bytes.Buffer, row layout.Row, fill string) {
	class := "year"
	if row.Decade {
		class += " decade"
	}
	fmt.Fprintf(buf, `  <g class="%s" data-year="%d">`+"\n", class, row.Year)
	for _, b := range row.Boxes {
		fmt.Fprintf(buf, `    <rect class="%s" data-week="%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			boxClass(b), b.Week, b.X, b.Y, b.Size, b.Size, fill, b.Stroke.Hex(), b.LineWidth)
	}
	buf.WriteString("  </g>\n")
}

func boxClass(b layout.Box) string {
	classes := []string{"week"}
	if b.Birthday {
		classes = append(classes, "birthday")
	}
	if b.Past {
		classes = append(classes, "past")
	}
	return strings.Join(classes, " ")
}

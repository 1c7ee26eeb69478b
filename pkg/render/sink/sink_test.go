package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/layout"
)

func testLayout(t *testing.T, opts ...layout.Option) layout.Layout {
	t.Helper()
	l, err := layout.Build(calendar.BirthDate{Year: 1990, Month: time.May, Day: 19}, 5, opts...)
	if err != nil {
		t.Fatalf("layout.Build() error: %v", err)
	}
	return l
}

func TestRenderPDF(t *testing.T) {
	l := testLayout(t)

	data, err := RenderPDF(l, WithPDFTitle("Ana"), WithPDFCompression(false))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}

	// One filled and stroked rectangle per box.
	if got, want := strings.Count(string(data), " re B"), l.BoxCount(); got != want {
		t.Errorf("rectangles = %d, want %d", got, want)
	}
}

func TestRenderPDFReproducible(t *testing.T) {
	l := testLayout(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := RenderPDF(l, WithPDFCreationDate(created))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	b, err := RenderPDF(l, WithPDFCreationDate(created))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("RenderPDF with a pinned creation date should be deterministic")
	}
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l, WithSVGTitle("Ana & Bob"), WithBackground()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("output is not a complete svg document")
	}
	if got := strings.Count(svg, `<rect class="week`); got != l.BoxCount() {
		t.Errorf("week rects = %d, want %d", got, l.BoxCount())
	}
	// One birthday per row.
	if got := strings.Count(svg, `class="week birthday"`); got != 5 {
		t.Errorf("birthday rects = %d, want 5", got)
	}
	if !strings.Contains(svg, "<title>Ana &amp; Bob</title>") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(svg, `class="year decade" data-year="1990"`) {
		t.Error("1990 should be marked as a decade row")
	}
	if !strings.Contains(svg, `viewBox="0 0 1684.0 2384.0"`) {
		t.Error("viewBox should match the page size")
	}
}

func TestRenderSVGDrawToDate(t *testing.T) {
	l := testLayout(t, layout.WithDrawToDate(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	svg := string(RenderSVG(l))

	if strings.Contains(svg, `stroke="#000000"`) {
		t.Error("every week of 1990-1994 is in the past and should be highlighted")
	}
	if !strings.Contains(svg, `stroke="#00ffff"`) {
		t.Error("past weeks should use the highlight color")
	}
}

func TestRenderPNG(t *testing.T) {
	l := testLayout(t)

	data, err := RenderPNG(l)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1684 || b.Dy() != 2384 {
		t.Errorf("size = %dx%d, want 1684x2384", b.Dx(), b.Dy())
	}

	// Birthday box of 1990 (week 20): thick outline, white interior.
	box := l.Rows[0].Boxes[0]
	if box.Week != 20 {
		t.Fatalf("first box week = %d, want 20", box.Week)
	}
	edgeR, _, _, _ := img.At(int(box.X), int(box.Y+box.Size/2)).RGBA()
	if edgeR>>8 > 64 {
		t.Errorf("outline pixel red = %d, want dark", edgeR>>8)
	}
	centerR, _, _, _ := img.At(int(box.X+box.Size/2), int(box.Y+box.Size/2)).RGBA()
	if centerR>>8 < 240 {
		t.Errorf("interior pixel red = %d, want white", centerR>>8)
	}
}

func TestRenderPNGScale(t *testing.T) {
	data, err := RenderPNG(testLayout(t), WithScale(0.5))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.DecodeConfig() error: %v", err)
	}
	if cfg.Width != 842 || cfg.Height != 1192 {
		t.Errorf("size = %dx%d, want 842x1192", cfg.Width, cfg.Height)
	}
}

func TestRenderJSON(t *testing.T) {
	l := testLayout(t)

	data, err := RenderJSON(l, WithJSONName("Ana"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Name != "Ana" || out.Birth != "1990-05-19" || out.Years != 5 {
		t.Errorf("header = %q %q %d", out.Name, out.Birth, out.Years)
	}
	if out.Page.Width != 1684 || out.Page.Height != 2384 {
		t.Errorf("page = %vx%v", out.Page.Width, out.Page.Height)
	}
	if len(out.Rows) != 5 || out.Grid.Boxes != l.BoxCount() {
		t.Errorf("rows = %d, boxes = %d", len(out.Rows), out.Grid.Boxes)
	}
	if out.Config.HighlightColor != layout.Highlight {
		t.Errorf("highlight color = %v", out.Config.HighlightColor)
	}
	if out.Now != "" {
		t.Errorf("now should be omitted outside draw-to-date mode, got %q", out.Now)
	}
}

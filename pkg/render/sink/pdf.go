package sink

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/lifeweeks/pkg/buildinfo"
	"github.com/matzehuels/lifeweeks/pkg/layout"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title    string
	created  time.Time
	compress bool
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// WithPDFCreationDate pins the creation and modification dates, which makes
// the output byte-for-byte reproducible.
func WithPDFCreationDate(t time.Time) PDFOption {
	return func(r *pdfRenderer) { r.created = t }
}

// WithPDFCompression toggles content stream compression (default on).
func WithPDFCompression(on bool) PDFOption {
	return func(r *pdfRenderer) { r.compress = on }
}

// RenderPDF draws the layout on a single page sized to the layout's page.
// Units are PDF points; the origin is the top-left corner as in the layout.
func RenderPDF(l layout.Layout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{compress: true}
	for _, opt := range opts {
		opt(&r)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: l.Config.PageWidth, Ht: l.Config.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	pdf.SetCreator(buildinfo.UserAgent(), true)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}
	if !r.created.IsZero() {
		pdf.SetCreationDate(r.created)
		pdf.SetModificationDate(r.created)
	}

	pdf.AddPage()
	fr, fg, fb := l.Config.FillColor.RGB255()
	pdf.SetFillColor(fr, fg, fb)
	for _, row := range l.Rows {
		for _, b := range row.Boxes {
			sr, sg, sb := b.Stroke.RGB255()
			pdf.SetDrawColor(sr, sg, sb)
			pdf.SetLineWidth(b.LineWidth)
			pdf.Rect(b.X, b.Y, b.Size, b.Size, "FD")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/layout"
	"github.com/matzehuels/lifeweeks/pkg/observability"
	"github.com/matzehuels/lifeweeks/pkg/render/sink"
)

// Render draws l in every requested format.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		if err = ctx.Err(); err != nil {
			break
		}
		var data []byte
		if data, err = RenderFormat(l, format, opts); err != nil {
			break
		}
		artifacts[format] = data
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat draws l in a single format.
func RenderFormat(l layout.Layout, format string, opts Options) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatPDF:
		pdfOpts := []sink.PDFOption{sink.WithPDFTitle(title(opts.Name))}
		if !opts.CreatedAt.IsZero() {
			pdfOpts = append(pdfOpts, sink.WithPDFCreationDate(opts.CreatedAt))
		}
		data, err = sink.RenderPDF(l, pdfOpts...)
	case FormatSVG:
		data = sink.RenderSVG(l, sink.WithSVGTitle(title(opts.Name)), sink.WithBackground())
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		data, err = sink.RenderPNG(l, sink.WithScale(scale))
	case FormatJSON:
		data, err = sink.RenderJSON(l, sink.WithJSONName(opts.Name))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func title(name string) string {
	if name == "" {
		return "Life in weeks"
	}
	return name + " - life in weeks"
}

package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/layout"
	"github.com/matzehuels/lifeweeks/pkg/observability"
)

// BuildLayout runs the layout stage for opts without caching.
func BuildLayout(ctx context.Context, opts Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Birth.String(), opts.Years)
	start := time.Now()

	l, err := layout.Build(opts.Birth, opts.Years, opts.LayoutOptions()...)

	hooks.OnLayoutComplete(ctx, len(l.Rows), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}

	opts.Logger.Debug("layout computed",
		"birth", opts.Birth,
		"years", opts.Years,
		"rows", len(l.Rows),
		"boxes", l.BoxCount(),
		"draw_to_date", opts.DrawToDate)
	return l, nil
}

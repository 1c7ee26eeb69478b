package layout

import "time"

// Option configures [Build] and [BuildRow].
type Option func(*builder)

type builder struct {
	cfg        Config
	drawToDate bool
	now        time.Time
	fade       bool
}

// WithConfig replaces the default geometry.
func WithConfig(cfg Config) Option {
	return func(b *builder) { b.cfg = cfg }
}

// WithDrawToDate highlights every week before now. A zero now means time.Now().
func WithDrawToDate(now time.Time) Option {
	return func(b *builder) {
		b.drawToDate = true
		b.now = now
	}
}

// WithFade grays out the last fifth of the years, darkest first.
func WithFade() Option {
	return func(b *builder) { b.fade = true }
}

func newBuilder(opts ...Option) builder {
	b := builder{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&b)
	}
	if b.drawToDate && b.now.IsZero() {
		b.now = time.Now()
	}
	return b
}

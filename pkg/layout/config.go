package layout

import "github.com/matzehuels/lifeweeks/pkg/errors"

// Page and grid defaults. The page has A4 proportions (210 x 297 mm) in
// 1684 x 2384 units.
const (
	DefaultPageWidth         = 1684.0
	DefaultPageHeight        = 2384.0
	DefaultBoxSize           = 10.0
	DefaultMargin            = 6.0
	DefaultExtraMargin       = 6.0
	DefaultLineWidth         = 1.0
	DefaultBirthdayLineWidth = 2.0
)

// Config holds the fixed drawing geometry and palette.
type Config struct {
	PageWidth  float64 `toml:"page_width" json:"page_width" env:"PAGE_WIDTH"`
	PageHeight float64 `toml:"page_height" json:"page_height" env:"PAGE_HEIGHT"`

	// BoxSize is the side of one week box.
	BoxSize float64 `toml:"box_size" json:"box_size" env:"BOX_SIZE"`
	// Margin separates boxes horizontally and rows vertically.
	Margin float64 `toml:"margin" json:"margin" env:"MARGIN"`
	// ExtraMargin is added above every decade row.
	ExtraMargin float64 `toml:"extra_margin" json:"extra_margin" env:"EXTRA_MARGIN"`

	LineWidth         float64 `toml:"line_width" json:"line_width" env:"LINE_WIDTH"`
	BirthdayLineWidth float64 `toml:"birthday_line_width" json:"birthday_line_width" env:"BIRTHDAY_LINE_WIDTH"`

	BaseColor      Color `toml:"base_color" json:"base_color" env:"BASE_COLOR"`
	HighlightColor Color `toml:"highlight_color" json:"highlight_color" env:"HIGHLIGHT_COLOR"`
	FillColor      Color `toml:"fill_color" json:"fill_color" env:"FILL_COLOR"`
}

// DefaultConfig returns the standard A4 calendar geometry.
func DefaultConfig() Config {
	return Config{
		PageWidth:         DefaultPageWidth,
		PageHeight:        DefaultPageHeight,
		BoxSize:           DefaultBoxSize,
		Margin:            DefaultMargin,
		ExtraMargin:       DefaultExtraMargin,
		LineWidth:         DefaultLineWidth,
		BirthdayLineWidth: DefaultBirthdayLineWidth,
		BaseColor:         Black,
		HighlightColor:    Highlight,
		FillColor:         White,
	}
}

// Pitch is the distance between the left edges of neighbouring boxes.
func (c Config) Pitch() float64 { return c.BoxSize + c.Margin }

// Validate checks that every dimension is usable.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"page_width", c.PageWidth},
		{"page_height", c.PageHeight},
		{"box_size", c.BoxSize},
		{"line_width", c.LineWidth},
		{"birthday_line_width", c.BirthdayLineWidth},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", ch.name, ch.value)
		}
	}
	if c.Margin < 0 || c.ExtraMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative")
	}
	return nil
}

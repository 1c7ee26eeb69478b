// Package pipeline provides the layout → render pipeline shared by the CLI,
// the batch generator and the HTTP service.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: position one row of week boxes per year of life
//  2. Render: draw the layout in one or more formats (PDF, SVG, PNG, JSON)
//
// A [Runner] executes both stages and caches rendered artifacts, keyed by
// every input that changes the output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Name:    "Ana",
//	    Birth:   birth,
//	    Years:   100,
//	    Formats: []string{pipeline.FormatPDF},
//	})
//	if err != nil {
//	    return err
//	}
//	pdf := result.Artifacts[pipeline.FormatPDF]
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lifeweeks/pkg/cache"
	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Batch
// =============================================================================

const (
	// DefaultYears is the number of rows in a calendar.
	DefaultYears = 100

	// MaxYears is the most rows that fit the default page for any birth
	// year. Custom geometry is checked against the page by layout.Build.
	MaxYears = 140

	// DefaultScale is the PNG pixel density relative to page units.
	DefaultScale = 1.0
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

var contentTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one calendar.
type Options struct {
	// Layout options
	Birth      calendar.BirthDate `json:"-"`
	Years      int                `json:"years,omitempty"` // required, 1..MaxYears
	DrawToDate bool               `json:"draw_to_date,omitempty"`
	Fade       bool               `json:"fade,omitempty"`

	// Now is the draw-to-date reference time. Zero means time.Now().
	Now time.Time `json:"-"`

	// Config overrides the page geometry. Nil means layout.DefaultConfig().
	Config *layout.Config `json:"-"`

	// Render options
	Name    string   `json:"name,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// CreatedAt pins the PDF creation date for reproducible output.
	CreatedAt time.Time `json:"-"`

	// Refresh skips cache reads but still stores fresh results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the positioned grid.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Boxes      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list such as "pdf,svg", dropping
// duplicates. An empty string yields the default PDF.
func ParseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{FormatPDF}, nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// ValidateYears checks the row count.
func ValidateYears(years int) error {
	if years < 1 || years > MaxYears {
		return errors.New(errors.ErrCodeInvalidInput, "years must be between 1 and %d, got %d", MaxYears, years)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation. Years has
// no default: callers apply [DefaultYears] themselves when the value was not
// given, so an explicit zero is rejected rather than replaced.
func (o *Options) SetLayoutDefaults() {
	if o.Config == nil {
		cfg := layout.DefaultConfig()
		o.Config = &cfg
	}
	if o.DrawToDate && o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := o.Birth.Validate(); err != nil {
		return err
	}
	if err := ValidateYears(o.Years); err != nil {
		return err
	}
	return o.Config.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPDF}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// LayoutOptions translates the options into layout builder options.
func (o *Options) LayoutOptions() []layout.Option {
	var opts []layout.Option
	if o.Config != nil {
		opts = append(opts, layout.WithConfig(*o.Config))
	}
	if o.DrawToDate {
		opts = append(opts, layout.WithDrawToDate(o.Now))
	}
	if o.Fade {
		opts = append(opts, layout.WithFade())
	}
	return opts
}

// LayoutKeyOpts returns cache key options for the layout.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{
		Birth:      o.Birth.String(),
		Years:      o.Years,
		DrawToDate: o.DrawToDate,
		Fade:       o.Fade,
	}
	if o.DrawToDate {
		k.NowWeek = fmt.Sprintf("%d-W%02d", o.Now.Year(), calendar.ISOWeek(o.Now))
	}
	if o.Config != nil {
		data, _ := json.Marshal(o.Config)
		k.ConfigHash = cache.Hash(data)
	}
	return k
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPDF, FormatSVG, FormatJSON:
		k.Name = o.Name
	case FormatPNG:
		k.Scale = o.Scale
	}
	return k
}

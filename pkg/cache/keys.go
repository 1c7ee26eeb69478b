package cache

import "fmt"

// Keyer derives cache keys from render inputs.
type Keyer interface {
	// LayoutKey identifies a positioned grid.
	LayoutKey(opts LayoutKeyOpts) string

	// ArtifactKey identifies one rendered format of a layout.
	ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists every input that changes box positions or colors.
type LayoutKeyOpts struct {
	Birth      string `json:"birth"`
	Years      int    `json:"years"`
	DrawToDate bool   `json:"draw_to_date"`
	// NowWeek is the ISO year and week of the draw-to-date reference
	// ("2026-W42"). Past boxes only change when the week does.
	NowWeek    string `json:"now_week,omitempty"`
	Fade       bool   `json:"fade"`
	ConfigHash string `json:"config_hash"`
}

// ArtifactKeyOpts lists the sink settings for one format.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Name   string  `json:"name,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes the options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutKey string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutKey, opts)
}

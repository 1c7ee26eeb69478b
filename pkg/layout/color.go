package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/lifeweeks/pkg/errors"
)

// Color is an RGB color with components in [0, 1].
// The zero value is black.
type Color struct {
	R, G, B float64
}

// Predefined colors.
var (
	Black     = Color{0, 0, 0}
	White     = Color{1, 1, 1}
	Highlight = Color{0, 1, 1} // past weeks in draw-to-date mode
)

// Gray returns the gray level v.
func Gray(v float64) Color { return Color{v, v, v} }

// RGB255 returns the color scaled to 0-255 channels.
func (c Color) RGB255() (r, g, b int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (c Color) String() string { return c.Hex() }

// MarshalText encodes the color as #rrggbb.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses #rrggbb or rrggbb.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a #rrggbb hex color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q (want #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid color %q", s)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

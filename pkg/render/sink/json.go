package sink

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	name string
}

// WithJSONName records the person's name in the output.
func WithJSONName(name string) JSONOption { return func(r *jsonRenderer) { r.name = name } }

type jsonOutput struct {
	Name       string        `json:"name,omitempty"`
	Birth      string        `json:"birth"`
	Years      int           `json:"years"`
	Page       jsonSize      `json:"page"`
	Grid       jsonGrid      `json:"grid"`
	DrawToDate bool          `json:"draw_to_date,omitempty"`
	Now        string        `json:"now,omitempty"`
	Fade       bool          `json:"fade,omitempty"`
	Config     layout.Config `json:"config"`
	Rows       []layout.Row  `json:"rows"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonGrid struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	MaxWeeks int     `json:"max_weeks"`
	Boxes    int     `json:"boxes"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
//
// The JSON includes the page and grid geometry, the configuration used, and
// every row with its positioned boxes. It is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Name:  r.name,
		Birth: l.Birth.String(),
		Years: l.Years,
		Page:  jsonSize{Width: l.Config.PageWidth, Height: l.Config.PageHeight},
		Grid: jsonGrid{
			X:        l.OriginX,
			Y:        l.OriginY,
			Width:    l.GridWidth,
			Height:   l.GridHeight,
			MaxWeeks: l.MaxWeeks,
			Boxes:    l.BoxCount(),
		},
		DrawToDate: l.DrawToDate,
		Fade:       l.Fade,
		Config:     l.Config,
		Rows:       l.Rows,
	}
	if l.DrawToDate {
		out.Now = l.Now.Format(time.RFC3339)
	}
	return json.MarshalIndent(out, "", "  ")
}

package layout

import (
	"github.com/matzehuels/lifeweeks/pkg/calendar"
)

// Box is one week of the grid.
type Box struct {
	Week      int     `json:"week"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	Stroke    Color   `json:"stroke"`
	LineWidth float64 `json:"line_width"`
	Birthday  bool    `json:"birthday,omitempty"`
	Past      bool    `json:"past,omitempty"`
}

// Row is one year of the grid.
type Row struct {
	Year         int     `json:"year"`
	Index        int     `json:"index"`
	Y            float64 `json:"y"`
	StartWeek    int     `json:"start_week"`
	EndWeek      int     `json:"end_week"`
	Weeks        int     `json:"weeks"`
	BirthdayWeek int     `json:"birthday_week"`
	Decade       bool    `json:"decade,omitempty"`
	Boxes        []Box   `json:"boxes"`
}

// RowSpec selects the year, position and week range of a row.
type RowSpec struct {
	Year  int
	X, Y  float64
	Start int   // first week, 1-based; 0 means week 1
	End   int   // last week, inclusive; 0 means the last ISO week of Year
	Base  Color // stroke for weeks that are not highlighted
}

// BuildRow lays out the boxes of a single year.
// An empty range (Start > End) yields a row without boxes.
func BuildRow(spec RowSpec, birth calendar.BirthDate, opts ...Option) Row {
	b := newBuilder(opts...)
	return b.row(spec, birth)
}

func (b *builder) row(spec RowSpec, birth calendar.BirthDate) Row {
	weeks := calendar.WeeksInYear(spec.Year)
	start, end := spec.Start, spec.End
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = weeks
	}

	r := Row{
		Year:         spec.Year,
		Y:            spec.Y,
		StartWeek:    start,
		EndWeek:      end,
		Weeks:        weeks,
		BirthdayWeek: calendar.BirthdayWeek(spec.Year, birth),
		Decade:       spec.Year%10 == 0,
	}
	if end >= start {
		r.Boxes = make([]Box, 0, end-start+1)
	}

	nowYear, nowWeek := b.now.Year(), calendar.ISOWeek(b.now)
	for week := start; week <= end; week++ {
		box := Box{
			Week:      week,
			X:         spec.X + float64(week-1)*b.cfg.Pitch(),
			Y:         spec.Y,
			Size:      b.cfg.BoxSize,
			Stroke:    spec.Base,
			LineWidth: b.cfg.LineWidth,
		}
		if b.drawToDate {
			box.Past = spec.Year < nowYear || (spec.Year == nowYear && week < nowWeek)
			if box.Past {
				box.Stroke = b.cfg.HighlightColor
			}
		}
		if week == r.BirthdayWeek {
			box.Birthday = true
			box.LineWidth = b.cfg.BirthdayLineWidth
		}
		r.Boxes = append(r.Boxes, box)
	}
	return r
}

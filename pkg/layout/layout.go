package layout

import (
	"time"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
)

// fadeShare is the leading share of years drawn in the base color when fading.
const fadeShare = 0.8

// Layout is a fully positioned life calendar page.
type Layout struct {
	Config     Config             `json:"config"`
	Birth      calendar.BirthDate `json:"-"`
	Years      int                `json:"years"`
	MaxWeeks   int                `json:"max_weeks"`
	GridWidth  float64            `json:"grid_width"`
	GridHeight float64            `json:"grid_height"`
	OriginX    float64            `json:"origin_x"`
	OriginY    float64            `json:"origin_y"`
	DrawToDate bool               `json:"draw_to_date,omitempty"`
	Now        time.Time          `json:"now,omitzero"`
	Fade       bool               `json:"fade,omitempty"`
	Rows       []Row              `json:"rows"`
}

// BoxCount returns the number of boxes across all rows.
func (l Layout) BoxCount() int {
	n := 0
	for _, r := range l.Rows {
		n += len(r.Boxes)
	}
	return n
}

// Build lays out years rows starting at the birth year.
func Build(birth calendar.BirthDate, years int, opts ...Option) (Layout, error) {
	if years < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "years must be at least 1, got %d", years)
	}
	if err := birth.Validate(); err != nil {
		return Layout{}, err
	}

	b := newBuilder(opts...)
	if err := b.cfg.Validate(); err != nil {
		return Layout{}, err
	}
	cfg := b.cfg
	first := birth.Year

	l := Layout{
		Config:     cfg,
		Birth:      birth,
		Years:      years,
		MaxWeeks:   MaxWeeks(first, years),
		GridHeight: GridHeight(first, years, cfg),
		DrawToDate: b.drawToDate,
		Fade:       b.fade,
		Rows:       make([]Row, 0, years),
	}
	if b.drawToDate {
		l.Now = b.now
	}
	l.GridWidth = float64(l.MaxWeeks)*cfg.Pitch() - cfg.Margin
	if l.GridHeight > cfg.PageHeight || l.GridWidth > cfg.PageWidth {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"%d years need a %.0fx%.0f grid, larger than the %.0fx%.0f page",
			years, l.GridWidth, l.GridHeight, cfg.PageWidth, cfg.PageHeight)
	}
	l.OriginX = (cfg.PageWidth - l.GridWidth) / 2
	l.OriginY = (cfg.PageHeight - l.GridHeight) / 2

	y := l.OriginY
	for i := range years {
		year := first + i
		if year%10 == 0 {
			y += cfg.ExtraMargin
		}

		spec := RowSpec{Year: year, X: l.OriginX, Y: y, Base: cfg.BaseColor}
		if i == 0 {
			spec.Start = calendar.BirthdayWeek(year, birth)
		}
		if i == years-1 {
			spec.End = calendar.BirthdayWeek(year, birth)
		}
		if b.fade {
			spec.Base = fadeColor(i, years, cfg.BaseColor)
		}

		row := b.row(spec, birth)
		row.Index = i
		l.Rows = append(l.Rows, row)
		y += cfg.BoxSize + cfg.Margin
	}
	return l, nil
}

// MaxWeeks returns the largest ISO week count among years starting at first.
func MaxWeeks(first, years int) int {
	m := 0
	for i := range years {
		m = max(m, calendar.WeeksInYear(first+i))
	}
	return m
}

// GridHeight returns the height of years rows starting at first, including
// decade spacing and excluding the trailing row margin.
func GridHeight(first, years int, cfg Config) float64 {
	h := 0.0
	for i := range years {
		h += cfg.BoxSize + cfg.Margin
		if (first+i)%10 == 0 {
			h += cfg.ExtraMargin
		}
	}
	return h - cfg.Margin
}

// fadeColor returns base for the first 80% of years and a gray ramp from
// black to white for the rest.
func fadeColor(index, years int, base Color) Color {
	start := int(float64(years) * fadeShare)
	if index < start {
		return base
	}
	return Gray(float64(index-start) / float64(years-start))
}

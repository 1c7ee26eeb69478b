package layout

import (
	"testing"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
)

var may19 = calendar.BirthDate{Year: 1990, Month: time.May, Day: 19}

func TestBuildRowFullYear(t *testing.T) {
	for _, year := range []int{1990, 1992, 2020, 2024} {
		row := BuildRow(RowSpec{Year: year, X: 100, Y: 50}, may19)
		want := calendar.WeeksInYear(year)

		if len(row.Boxes) != want {
			t.Fatalf("year %d: got %d boxes, want %d", year, len(row.Boxes), want)
		}
		for i, b := range row.Boxes {
			if b.Week != i+1 {
				t.Errorf("year %d box %d: Week = %d", year, i, b.Week)
			}
			if b.Y != 50 || b.Size != DefaultBoxSize {
				t.Errorf("year %d box %d: Y=%v Size=%v", year, i, b.Y, b.Size)
			}
			if i > 0 {
				if d := b.X - row.Boxes[i-1].X; d != DefaultBoxSize+DefaultMargin {
					t.Errorf("year %d box %d: offset %v, want %v", year, i, d, DefaultBoxSize+DefaultMargin)
				}
			}
		}
		if row.Boxes[0].X != 100 {
			t.Errorf("first box X = %v, want 100", row.Boxes[0].X)
		}
	}
}

func TestBuildRowBirthdayWeek(t *testing.T) {
	row := BuildRow(RowSpec{Year: 1990}, may19)

	if row.BirthdayWeek != 20 {
		t.Fatalf("BirthdayWeek = %d, want 20", row.BirthdayWeek)
	}
	for _, b := range row.Boxes {
		wantWidth := DefaultLineWidth
		if b.Week == 20 {
			wantWidth = DefaultBirthdayLineWidth
		}
		if b.LineWidth != wantWidth {
			t.Errorf("week %d: LineWidth = %v, want %v", b.Week, b.LineWidth, wantWidth)
		}
		if b.Birthday != (b.Week == 20) {
			t.Errorf("week %d: Birthday = %v", b.Week, b.Birthday)
		}
	}
}

func TestBuildRowRange(t *testing.T) {
	row := BuildRow(RowSpec{Year: 1990, X: 0, Start: 20, End: 25}, may19)

	if len(row.Boxes) != 6 {
		t.Fatalf("got %d boxes, want 6", len(row.Boxes))
	}
	if row.Boxes[0].Week != 20 || row.Boxes[5].Week != 25 {
		t.Errorf("weeks = %d..%d, want 20..25", row.Boxes[0].Week, row.Boxes[5].Week)
	}
	// Partial rows keep the column of their week.
	if want := 19 * (DefaultBoxSize + DefaultMargin); row.Boxes[0].X != want {
		t.Errorf("first X = %v, want %v", row.Boxes[0].X, want)
	}
}

func TestBuildRowEmptyRange(t *testing.T) {
	row := BuildRow(RowSpec{Year: 2021, Start: 53}, may19)
	if len(row.Boxes) != 0 {
		t.Errorf("got %d boxes, want 0", len(row.Boxes))
	}
}

func TestBuildRowColors(t *testing.T) {
	now := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC) // ISO week 24
	base := Color{0.2, 0.2, 0.2}

	tests := []struct {
		name     string
		year     int
		week     int
		opts     []Option
		want     Color
		wantPast bool
	}{
		{"normal mode past week", 2000, 10, nil, base, false},
		{"normal mode future week", 2030, 10, nil, base, false},
		{"to-date past year", 2000, 10, []Option{WithDrawToDate(now)}, Highlight, true},
		{"to-date same year earlier week", 2024, 23, []Option{WithDrawToDate(now)}, Highlight, true},
		{"to-date current week", 2024, 24, []Option{WithDrawToDate(now)}, base, false},
		{"to-date future week", 2024, 30, []Option{WithDrawToDate(now)}, base, false},
		{"to-date future year", 2025, 1, []Option{WithDrawToDate(now)}, base, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := BuildRow(RowSpec{Year: tt.year, Start: tt.week, End: tt.week, Base: base}, may19, tt.opts...)
			if len(row.Boxes) != 1 {
				t.Fatalf("got %d boxes", len(row.Boxes))
			}
			b := row.Boxes[0]
			if b.Stroke != tt.want {
				t.Errorf("Stroke = %v, want %v", b.Stroke, tt.want)
			}
			if b.Past != tt.wantPast {
				t.Errorf("Past = %v, want %v", b.Past, tt.wantPast)
			}
		})
	}
}

func TestBuildRowDefaultBaseIsBlack(t *testing.T) {
	row := BuildRow(RowSpec{Year: 1995}, may19)
	for _, b := range row.Boxes {
		if b.Stroke != Black {
			t.Fatalf("week %d stroke = %v, want black", b.Week, b.Stroke)
		}
	}
}

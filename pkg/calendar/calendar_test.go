package calendar

import (
	"testing"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/errors"
)

func TestWeeksInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2015, 53},
		{2019, 52}, // Dec 31 2019 is in week 1 of 2020
		{2020, 53},
		{2021, 52},
		{2024, 52}, // Dec 31 2024 is in week 1 of 2025
		{2026, 53},
		{1990, 52},
		{1992, 53},
	}

	for _, tt := range tests {
		if got := WeeksInYear(tt.year); got != tt.want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestWeeksInYearRange(t *testing.T) {
	for year := 1800; year <= 2200; year++ {
		got := WeeksInYear(year)
		if got != 52 && got != 53 {
			t.Fatalf("WeeksInYear(%d) = %d, want 52 or 53", year, got)
		}
		// Dec 28 is always in the last ISO week of its year.
		_, want := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
		if got != want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2001, false},
		{2004, true},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestCelebrationDate(t *testing.T) {
	leapling := BirthDate{Year: 2000, Month: time.February, Day: 29}

	tests := []struct {
		name  string
		year  int
		birth BirthDate
		want  string
	}{
		{"leap day in leap year", 2004, leapling, "2004-02-29"},
		{"leap day in non-leap year", 2001, leapling, "2001-03-01"},
		{"leap day in century year", 2100, leapling, "2100-03-01"},
		{"leap day in 400 year", 2400, leapling, "2400-02-29"},
		{"ordinary date", 1995, BirthDate{Year: 1990, Month: time.May, Day: 19}, "1995-05-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CelebrationDate(tt.year, tt.birth).Format(time.DateOnly)
			if got != tt.want {
				t.Errorf("CelebrationDate(%d) = %s, want %s", tt.year, got, tt.want)
			}
		})
	}
}

func TestBirthdayWeek(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		birth BirthDate
		want  int
	}{
		{"may 19 1990", 1990, BirthDate{Year: 1990, Month: time.May, Day: 19}, 20},
		{"leap day moved to march 1", 2001, BirthDate{Year: 2000, Month: time.February, Day: 29}, 9},
		{"leap day kept", 2000, BirthDate{Year: 2000, Month: time.February, Day: 29}, 9},
		{"jan 1 in previous iso year", 2022, BirthDate{Year: 1980, Month: time.January, Day: 1}, 52},
		{"dec 30 in next iso year", 2019, BirthDate{Year: 1980, Month: time.December, Day: 30}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BirthdayWeek(tt.year, tt.birth); got != tt.want {
				t.Errorf("BirthdayWeek(%d, %s) = %d, want %d", tt.year, tt.birth, got, tt.want)
			}
		})
	}
}

func TestBirthdayWeekMatchesISOWeek(t *testing.T) {
	b := BirthDate{Year: 1982, Month: time.May, Day: 19}
	for year := 1982; year < 2082; year++ {
		_, want := time.Date(year, b.Month, b.Day, 0, 0, 0, 0, time.UTC).ISOWeek()
		if got := BirthdayWeek(year, b); got != want {
			t.Errorf("BirthdayWeek(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestNewBirthDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{"valid", 1990, 5, 19, false},
		{"leap day", 2000, 2, 29, false},
		{"leap day non-leap year", 2001, 2, 29, true},
		{"month 13", 1990, 13, 1, true},
		{"month 0", 1990, 0, 1, true},
		{"day 0", 1990, 1, 0, true},
		{"april 31", 1990, 4, 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBirthDate(tt.y, tt.m, tt.d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBirthDate(%d, %d, %d) error = %v, wantErr %v", tt.y, tt.m, tt.d, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidDate) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDate)
			}
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	b, err := ParseBirthDate("1990-05-19")
	if err != nil {
		t.Fatalf("ParseBirthDate error: %v", err)
	}
	if b != (BirthDate{Year: 1990, Month: time.May, Day: 19}) {
		t.Errorf("ParseBirthDate = %+v", b)
	}
	if b.String() != "1990-05-19" {
		t.Errorf("String() = %q", b.String())
	}

	for _, bad := range []string{"", "1990-5-19", "19.05.1990", "2001-02-29"} {
		if _, err := ParseBirthDate(bad); err == nil {
			t.Errorf("ParseBirthDate(%q) should fail", bad)
		}
	}
}

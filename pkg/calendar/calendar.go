package calendar

import (
	"fmt"
	"time"

	"github.com/matzehuels/lifeweeks/pkg/errors"
)

// BirthDate is a calendar date of birth.
type BirthDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewBirthDate builds a BirthDate and validates it.
func NewBirthDate(year, month, day int) (BirthDate, error) {
	b := BirthDate{Year: year, Month: time.Month(month), Day: day}
	if err := b.Validate(); err != nil {
		return BirthDate{}, err
	}
	return b, nil
}

// ParseBirthDate parses a YYYY-MM-DD string.
func ParseBirthDate(s string) (BirthDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return BirthDate{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid birth date %q (want YYYY-MM-DD)", s)
	}
	return BirthDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Validate reports whether the date exists in the proleptic Gregorian calendar.
func (b BirthDate) Validate() error {
	if b.Month < time.January || b.Month > time.December {
		return errors.New(errors.ErrCodeInvalidDate, "month out of range: %d", int(b.Month))
	}
	if b.Day < 1 || b.Day > daysIn(b.Year, b.Month) {
		return errors.New(errors.ErrCodeInvalidDate, "day out of range: %04d-%02d-%02d", b.Year, int(b.Month), b.Day)
	}
	return nil
}

// Time returns midnight UTC of the birth date.
func (b BirthDate) Time() time.Time {
	return time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
}

// IsLeapDay reports whether the birth falls on February 29.
func (b BirthDate) IsLeapDay() bool {
	return b.Month == time.February && b.Day == 29
}

func (b BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// WeeksInYear returns the number of ISO weeks in year (52 or 53).
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).ISOWeek()
	if week == 1 {
		return 52
	}
	return week
}

// CelebrationDate returns the date on which b is celebrated in year.
// February 29 births are celebrated on March 1 in non-leap years.
func CelebrationDate(year int, b BirthDate) time.Time {
	if b.IsLeapDay() && !IsLeap(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
}

// BirthdayWeek returns the ISO week number holding the celebration of b in year.
func BirthdayWeek(year int, b BirthDate) int {
	_, week := CelebrationDate(year, b).ISOWeek()
	return week
}

// ISOWeek returns the ISO week number of t.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
)

// fieldCount is the number of comma-separated fields per record.
const fieldCount = 4

// Record is one person from a birthday list.
type Record struct {
	Line  int
	Name  string
	Birth calendar.BirthDate
}

// ParseRecord parses a single name,year,month,day line.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != fieldCount {
		return Record{}, errors.New(errors.ErrCodeInvalidRecord, "expected %d fields (name,year,month,day), got %d", fieldCount, len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if err := errors.ValidateName(name); err != nil {
		return Record{}, err
	}

	var nums [3]int
	for i, label := range []string{"year", "month", "day"} {
		raw := strings.TrimSpace(fields[i+1])
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Record{}, errors.New(errors.ErrCodeInvalidRecord, "%s is not a number: %q", label, raw)
		}
		nums[i] = n
	}

	birth, err := calendar.NewBirthDate(nums[0], nums[1], nums[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Birth: birth}, nil
}

// Scanner streams records from a birthday list.
//
//	s := io.NewScanner(f)
//	for s.Scan() {
//	    rec, err := s.Record()
//	    ...
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	sc   *bufio.Scanner
	line int
	rec  Record
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next non-blank line. It returns false at the end of
// the input or on a read error.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		text := s.sc.Text()
		if s.line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		s.rec, s.err = ParseRecord(text)
		s.rec.Line = s.line
		if s.err != nil {
			s.err = &errors.RecordError{Line: s.line, Err: s.err}
		}
		return true
	}
	return false
}

// Record returns the record of the current line, or its parse error.
func (s *Scanner) Record() (Record, error) {
	return s.rec, s.err
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int { return s.line }

// Err returns the first read error encountered.
func (s *Scanner) Err() error { return s.sc.Err() }

// ReadRecords parses every record in r and stops at the first bad line.
func ReadRecords(r io.Reader) ([]Record, error) {
	var out []Record
	s := NewScanner(r)
	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	if err := s.Err(); err != nil {
		return out, errors.Wrap(errors.ErrCodeInternal, err, "read records")
	}
	return out, nil
}

// OpenRecords opens a birthday list for reading.
func OpenRecords(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "birthday list not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}

// ImportRecords reads all records from the file at path.
func ImportRecords(path string) ([]Record, error) {
	f, err := OpenRecords(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}

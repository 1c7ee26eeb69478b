// Package batch generates a calendar per person in a birthday list.
//
// The list is read once per pass of the selected [Mode]. In [ModeBoth] the
// normal pass renders every record as {name}.pdf before the draw-to-date
// pass renders {name}_.pdf, so a run that aborts in the first pass writes no
// draw-to-date documents.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/io"
	"github.com/matzehuels/lifeweeks/pkg/layout"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// Mode selects which documents are generated per record.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeToDate Mode = "to-date"
	ModeBoth   Mode = "both"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNormal, ModeToDate, ModeBoth:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid mode %q (must be one of: normal, to-date, both)", s)
}

// passes returns the draw-to-date flag of each pass, in order.
func (m Mode) passes() []bool {
	switch m {
	case ModeNormal:
		return []bool{false}
	case ModeToDate:
		return []bool{true}
	default:
		return []bool{false, true}
	}
}

// Options configures a [Generator].
type Options struct {
	Years     int
	Mode      Mode
	Formats   []string
	OutputDir string
	Fade      bool
	Config    *layout.Config

	// Now is the draw-to-date reference. Zero means the time the run starts,
	// shared by every record.
	Now time.Time

	// ContinueOnError skips bad records and returns every failure at the end
	// instead of stopping at the first.
	ContinueOnError bool

	// Refresh bypasses cached artifacts.
	Refresh bool
}

// Outcome reports the documents written for one record in one pass.
type Outcome struct {
	Record     io.Record
	DrawToDate bool
	Paths      []string
	Err        error
}

// Summary totals a run. Records counts records that succeeded in every pass.
type Summary struct {
	Records int
	Files   []string
	Failed  int
}

// Generator renders birthday lists through a pipeline runner.
type Generator struct {
	runner *pipeline.Runner
	logger *log.Logger

	// OnRecord, if set, is called after each record finishes or fails, once
	// per pass.
	OnRecord func(Outcome)
}

// New returns a Generator that renders through runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Generator {
	if logger == nil {
		logger = runner.Logger
	}
	return &Generator{runner: runner, logger: logger}
}

// SetDefaults fills unset options. Years has no default; zero is rejected
// by Validate.
func (o *Options) SetDefaults() {
	if o.Mode == "" {
		o.Mode = ModeBoth
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{pipeline.FormatPDF}
	}
	if o.OutputDir == "" {
		o.OutputDir = io.DefaultOutputDir
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if err := pipeline.ValidateYears(o.Years); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidatePath(o.OutputDir)
}

// RunFile reads the list at path and renders every record. The file is
// read again for each pass.
func (g *Generator) RunFile(ctx context.Context, path string, opts Options) (Summary, error) {
	open := func() (source, func(), error) {
		f, err := io.OpenRecords(path)
		if err != nil {
			return nil, nil, err
		}
		g.logger.Debug("reading birthdays", "file", path)
		return io.NewScanner(f), func() { f.Close() }, nil
	}
	return g.run(ctx, open, opts)
}

// Run renders every record of an already parsed list.
func (g *Generator) Run(ctx context.Context, records []io.Record, opts Options) (Summary, error) {
	open := func() (source, func(), error) {
		return &sliceSource{records: records}, func() {}, nil
	}
	return g.run(ctx, open, opts)
}

// source yields records one at a time; io.Scanner satisfies it.
type source interface {
	Scan() bool
	Record() (io.Record, error)
	Err() error
}

// opener starts a fresh pass over the records.
type opener func() (source, func(), error)

type sliceSource struct {
	records []io.Record
	i       int
}

func (s *sliceSource) Scan() bool {
	if s.i >= len(s.records) {
		return false
	}
	s.i++
	return true
}

func (s *sliceSource) Record() (io.Record, error) { return s.records[s.i-1], nil }

func (s *sliceSource) Err() error { return nil }

// runState accumulates results across passes.
type runState struct {
	sum  Summary
	errs *multierror.Error
	seen int

	// failed holds the positions of records that failed in an earlier pass;
	// later passes skip them so each failure is reported once.
	failed map[int]bool
}

func (st *runState) summary() Summary {
	st.sum.Failed = len(st.failed)
	st.sum.Records = max(st.seen-len(st.failed), 0)
	return st.sum
}

func (g *Generator) run(ctx context.Context, open opener, opts Options) (Summary, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	st := &runState{failed: make(map[int]bool)}
	for _, toDate := range opts.Mode.passes() {
		if err := g.pass(ctx, open, opts, toDate, st); err != nil {
			return st.summary(), err
		}
	}

	sum := st.summary()
	g.logger.Debug("batch complete", "records", sum.Records, "files", len(sum.Files), "failed", sum.Failed)
	return sum, st.errs.ErrorOrNil()
}

// pass renders every record once with the given draw-to-date flag. A
// non-nil error aborts the run.
func (g *Generator) pass(ctx context.Context, open opener, opts Options, toDate bool, st *runState) error {
	src, closeSrc, err := open()
	if err != nil {
		return err
	}
	defer closeSrc()

	pos := 0
	for src.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pos++
		st.seen = max(st.seen, pos)
		if st.failed[pos] {
			continue
		}

		rec, err := src.Record()
		var paths []string
		if err == nil {
			paths, err = g.generate(ctx, rec, opts, toDate)
			st.sum.Files = append(st.sum.Files, paths...)
		}
		g.report(Outcome{Record: rec, DrawToDate: toDate, Paths: paths, Err: err})
		if err == nil {
			continue
		}

		st.failed[pos] = true
		if !opts.ContinueOnError || ctx.Err() != nil {
			return err
		}
		g.logger.Debug("skipping record", "err", errors.UserMessage(err))
		st.errs = multierror.Append(st.errs, err)
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	return nil
}

// generate renders and writes one document set for a record.
func (g *Generator) generate(ctx context.Context, rec io.Record, opts Options, toDate bool) ([]string, error) {
	res, err := g.runner.Execute(ctx, pipeline.Options{
		Name:       rec.Name,
		Birth:      rec.Birth,
		Years:      opts.Years,
		DrawToDate: toDate,
		Now:        opts.Now,
		Fade:       opts.Fade,
		Config:     opts.Config,
		Formats:    opts.Formats,
		Refresh:    opts.Refresh,
	})
	if err != nil {
		return nil, g.annotate(rec, err)
	}

	var paths []string
	stem := io.Stem(rec.Name, toDate)
	for _, format := range opts.Formats {
		path, err := io.WriteArtifact(opts.OutputDir, stem, format, res.Artifacts[format])
		if err != nil {
			return paths, g.annotate(rec, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *Generator) annotate(rec io.Record, err error) error {
	if rec.Line > 0 {
		return &errors.RecordError{Line: rec.Line, Err: err}
	}
	return err
}

func (g *Generator) report(o Outcome) {
	if o.Err == nil {
		g.logger.Debug("generated", "name", o.Record.Name, "to_date", o.DrawToDate, "files", len(o.Paths))
	}
	if g.OnRecord != nil {
		g.OnRecord(o)
	}
}

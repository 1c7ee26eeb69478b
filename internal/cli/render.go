package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/io"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// defaultName is the file stem used when --name is not given.
const defaultName = "calendar"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	birth     string  // birth date, YYYY-MM-DD
	name      string  // person's name, used for the file stem and PDF title
	years     int     // rows in the grid
	toDate    bool    // outline only weeks up to now
	fade      bool    // fade the last fifth of the rows
	formats   string  // comma-separated output formats
	output    string  // output file (single format) or base path
	outputDir string  // directory used when output is empty
	scale     float64 // PNG pixel density
	noCache   bool
	refresh   bool
}

// renderCommand creates the render command for a single calendar.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		years:   pipeline.DefaultYears,
		formats: pipeline.FormatPDF,
		scale:   pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one calendar from a birth date",
		Example: `  lifeweeks render --birth 1990-05-19 --name Ana
  lifeweeks render --birth 1990-05-19 --to-date -f png --scale 2 -o ana.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("years") {
				opts.years = c.Config.Years
			}
			if !cmd.Flags().Changed("output-dir") {
				opts.outputDir = c.Config.OutputDir
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.birth, "birth", "b", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "name shown in the document title and used for the file name")
	cmd.Flags().IntVarP(&opts.years, "years", "y", opts.years, "years (rows) in the calendar")
	cmd.Flags().BoolVarP(&opts.toDate, "to-date", "t", false, "only outline weeks up to the current one")
	cmd.Flags().BoolVar(&opts.fade, "fade", false, "fade the outlines of the last fifth of the rows from black toward white")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: pdf, svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "output directory when -o is not given (default from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	birth, err := calendar.ParseBirthDate(opts.birth)
	if err != nil {
		return err
	}
	formats, err := pipeline.ParseFormats(opts.formats)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = defaultName
	}
	dir, stem, err := outputTarget(opts, name, formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	render := c.Config.Render
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d years from %s...", opts.years, birth))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Birth:      birth,
		Name:       opts.name,
		Years:      opts.years,
		DrawToDate: opts.toDate,
		Fade:       opts.fade,
		Config:     &render,
		Formats:    formats,
		Scale:      opts.scale,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	var paths []string
	for _, format := range formats {
		path, err := io.WriteArtifact(dir, stem, format, result.Artifacts[format])
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", StyleHighlight.Render(name))
	printStats(result.Stats.Rows, result.Stats.Boxes, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	if !opts.toDate {
		printNextStep("Mark the weeks lived so far", fmt.Sprintf("lifeweeks render -b %s --to-date", birth))
	}
	logger.Debug("render timing", "layout", result.Stats.LayoutTime.Round(time.Microsecond),
		"render", result.Stats.RenderTime.Round(time.Microsecond))
	return nil
}

// outputTarget resolves the directory and file stem for the artifacts.
// An explicit -o is a file for a single format and a base path otherwise;
// its directory is taken as given, so relative paths may leave the working
// directory.
func outputTarget(opts *renderOpts, name string, formats []string) (dir, stem string, err error) {
	if opts.output == "" {
		stem = io.Stem(name, opts.toDate)
		if err := errors.ValidateName(stem); err != nil {
			return "", "", err
		}
		if err := errors.ValidatePath(opts.outputDir); err != nil {
			return "", "", err
		}
		return opts.outputDir, stem, nil
	}

	base := filepath.Base(opts.output)
	ext := filepath.Ext(base)
	if len(formats) == 1 && ext != "" && !strings.EqualFold(strings.TrimPrefix(ext, "."), formats[0]) {
		return "", "", errors.New(errors.ErrCodeInvalidPath,
			"output %s does not match format %s", opts.output, formats[0])
	}
	stem = strings.TrimSuffix(base, ext)
	if err := errors.ValidateName(stem); err != nil {
		return "", "", err
	}
	if dir, err = filepath.Abs(filepath.Dir(opts.output)); err != nil {
		return "", "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve output %s", opts.output)
	}
	return dir, stem, nil
}

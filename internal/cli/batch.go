package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/batch"
	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// batchFlags holds flag values for the batch command and the root command.
type batchFlags struct {
	years           int
	mode            string
	formats         string
	outputDir       string
	fade            bool
	continueOnError bool
	noCache         bool
	refresh         bool
}

func newBatchFlags() *batchFlags {
	return &batchFlags{
		years:   pipeline.DefaultYears,
		mode:    string(batch.ModeBoth),
		formats: pipeline.FormatPDF,
	}
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.years, "years", "y", f.years, "years (rows) per calendar")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", f.mode, "documents per person: normal, to-date, both")
	cmd.Flags().StringVarP(&f.formats, "format", "f", f.formats, "output formats: pdf, svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&f.fade, "fade", false, "fade the outlines of the last fifth of the rows from black toward white")
	cmd.Flags().BoolVarP(&f.continueOnError, "continue-on-error", "k", false, "skip bad records and report them at the end")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	cmd.ValidArgsFunction = completeListFiles
}

// options merges the flags with the loaded config. Flags win only when set.
func (f *batchFlags) options(cmd *cobra.Command, c *CLI) (batch.Options, error) {
	mode, err := batch.ParseMode(f.mode)
	if err != nil {
		return batch.Options{}, err
	}
	formats, err := pipeline.ParseFormats(f.formats)
	if err != nil {
		return batch.Options{}, err
	}

	render := c.Config.Render
	opts := batch.Options{
		Years:           c.Config.Years,
		Mode:            mode,
		Formats:         formats,
		OutputDir:       c.Config.OutputDir,
		Fade:            f.fade,
		Config:          &render,
		ContinueOnError: f.continueOnError,
		Refresh:         f.refresh,
	}
	if cmd.Flags().Changed("years") {
		opts.Years = f.years
	}
	if cmd.Flags().Changed("output-dir") {
		opts.OutputDir = f.outputDir
	}
	return opts, nil
}

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	flags := newBatchFlags()

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Render a calendar for every person in a birthday list",
		Long: `Render a calendar for every person in a birthday list.

Each line of the file is "name,year,month,day". Blank lines are skipped.
With --mode both (the default) two documents are written per person:
{name}.pdf shows the whole grid, {name}_.pdf stops at the current week.`,
		Example: `  # Read birthdays.txt and write output/Ana.pdf and output/Ana_.pdf
  lifeweeks batch

  # 90-year calendars as PDF and SVG, keep going past bad lines
  lifeweeks batch family.txt -y 90 -f pdf,svg -k`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runBatch(cmd *cobra.Command, args []string, flags *batchFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}

	opts, err := flags.options(cmd, c)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	gen := batch.New(runner, logger)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Reading %s...", input))
	spinner.Start()

	gen.OnRecord = func(o batch.Outcome) {
		spinner.Print(func() {
			if o.Err != nil {
				printError("%s", errors.UserMessage(o.Err))
				return
			}
			detail := o.Record.Birth.String()
			if o.DrawToDate {
				detail += " · to date"
			}
			printSuccess("%s %s", o.Record.Name, StyleDim.Render(detail))
			for _, p := range o.Paths {
				printFile(p)
			}
		})
		spinner.SetMessage(fmt.Sprintf("Rendering %s...", input))
	}

	summary, err := gen.RunFile(ctx, input, opts)
	spinner.Stop()
	if err != nil {
		if summary.Failed > 0 && opts.ContinueOnError {
			printWarning("%d of %d records failed", summary.Failed, summary.Records+summary.Failed)
		}
		return err
	}

	prog.done(fmt.Sprintf("Generated %d files for %d people", len(summary.Files), summary.Records))
	return nil
}

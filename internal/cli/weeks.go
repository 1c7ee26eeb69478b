package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// defaultWeeksSpan is the number of years listed when --to is not given.
const defaultWeeksSpan = 10

type weeksOpts struct {
	birth string
	from  int
	to    int
}

// weeksCommand creates the weeks command, which lists the ISO week count and
// birthday week of each year without rendering anything.
func (c *CLI) weeksCommand() *cobra.Command {
	var opts weeksOpts

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "List weeks per year and the birthday week",
		Long: `List, per year, the number of ISO weeks, the date the birthday is
celebrated (March 1 for February 29 births in common years) and the ISO week
it falls in.`,
		Example: `  lifeweeks weeks --birth 2000-02-29
  lifeweeks weeks --birth 1990-05-19 --from 2020 --to 2030`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := calendar.ParseBirthDate(opts.birth)
			if err != nil {
				return err
			}
			from, years, err := weeksRange(birth, opts.from, opts.to)
			if err != nil {
				return err
			}
			writeWeeksTable(os.Stdout, birth, from, years)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.birth, "birth", "b", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "first year listed (default birth year)")
	cmd.Flags().IntVar(&opts.to, "to", 0, "last year listed (default --from plus 9, ten years in all)")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

// weeksRange resolves --from and --to, where zero means unset, into the
// first year and the number of years listed.
func weeksRange(birth calendar.BirthDate, from, to int) (int, int, error) {
	if from == 0 {
		from = birth.Year
	}
	if to == 0 {
		to = from + defaultWeeksSpan - 1
	}
	if to < from {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "--to %d is before --from %d", to, from)
	}
	if years := to - from + 1; years > pipeline.MaxYears {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"%d..%d lists %d years, at most %d are allowed", from, to, years, pipeline.MaxYears)
	}
	return from, to - from + 1, nil
}

func writeWeeksTable(w io.Writer, birth calendar.BirthDate, from, years int) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	longStyle := cellStyle.Foreground(colorCyan)

	rows := make([][]string, 0, years)
	long := make(map[int]bool)
	for i := range years {
		year := from + i
		weeks := calendar.WeeksInYear(year)
		if weeks == 53 {
			long[i] = true
		}
		rows = append(rows, []string{
			strconv.Itoa(year),
			strconv.Itoa(year - birth.Year),
			strconv.Itoa(weeks),
			calendar.CelebrationDate(year, birth).Format("Mon Jan 2"),
			fmt.Sprintf("W%02d", calendar.BirthdayWeek(year, birth)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Year", "Age", "Weeks", "Birthday", "Week").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2 && long[row]:
				return longStyle
			default:
				return cellStyle
			}
		})

	fmt.Fprintln(w, t.Render())
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeweeks/pkg/calendar"
	"github.com/matzehuels/lifeweeks/pkg/layout"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// Grid glyphs
const (
	glyphWeek     = "□"
	glyphPast     = "■"
	glyphBirthday = "▣"
	glyphGap      = " "
)

var (
	previewWeekStyle     = lipgloss.NewStyle().Foreground(colorDim)
	previewPastStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	previewBirthdayStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	previewYearStyle     = lipgloss.NewStyle().Foreground(colorGray).Width(6)
	previewCursorStyle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Width(6)
)

// =============================================================================
// PreviewModel - Terminal calendar browser
// =============================================================================

// PreviewModel is the bubbletea model that shows a calendar grid, one line
// per year, in the terminal.
type PreviewModel struct {
	Birth  calendar.BirthDate
	Years  int
	Now    time.Time
	ToDate bool
	Cursor int
	Offset int
	Height int

	layout layout.Layout
	err    error
}

// NewPreviewModel creates a preview model and builds its first layout.
func NewPreviewModel(birth calendar.BirthDate, years int, toDate bool, now time.Time) PreviewModel {
	m := PreviewModel{
		Birth:  birth,
		Years:  years,
		Now:    now,
		ToDate: toDate,
		Height: 20,
	}
	m.rebuild()
	return m
}

func (m *PreviewModel) rebuild() {
	m.layout, m.err = pipeline.BuildLayout(context.Background(), pipeline.Options{
		Birth:      m.Birth,
		Years:      m.Years,
		DrawToDate: m.ToDate,
		Now:        m.Now,
	})
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.layout.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.layout.Rows)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		case "t":
			m.ToDate = !m.ToDate
			m.rebuild()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-7, 5)
		m.Offset = max(min(m.Offset, m.Cursor), m.Cursor-m.Height+1)
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Life in weeks"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("born %s · %d years", m.Birth, m.Years)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ scroll  t toggle to-date  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.layout.Rows))
	for i := m.Offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m PreviewModel) renderRow(i int) string {
	row := m.layout.Rows[i]

	label := previewYearStyle.Render(fmt.Sprint(row.Year))
	if i == m.Cursor {
		label = previewCursorStyle.Render(fmt.Sprint(row.Year))
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(strings.Repeat(glyphGap, row.StartWeek-1))
	for _, box := range row.Boxes {
		switch {
		case box.Birthday:
			b.WriteString(previewBirthdayStyle.Render(glyphBirthday))
		case box.Past:
			b.WriteString(previewPastStyle.Render(glyphPast))
		default:
			b.WriteString(previewWeekStyle.Render(glyphWeek))
		}
	}
	return b.String()
}

func (m PreviewModel) footer() string {
	if len(m.layout.Rows) == 0 {
		return ""
	}
	row := m.layout.Rows[m.Cursor]
	celebration := calendar.CelebrationDate(row.Year, m.Birth)
	mode := "normal"
	if m.ToDate {
		mode = "to-date"
	}
	return listDimStyle.Render(fmt.Sprintf("  %d · %d weeks · birthday %s in W%02d · %s",
		row.Year, row.Weeks, celebration.Format("Jan 2"), row.BirthdayWeek, mode))
}

// listDimStyle is the muted style for help and status lines.
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		birthStr string
		years    int
		toDate   bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse a calendar in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := calendar.ParseBirthDate(birthStr)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("years") {
				years = c.Config.Years
			}
			if err := pipeline.ValidateYears(years); err != nil {
				return err
			}

			model := NewPreviewModel(birth, years, toDate, time.Now())
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&birthStr, "birth", "b", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&years, "years", "y", pipeline.DefaultYears, "years (rows) in the calendar")
	cmd.Flags().BoolVarP(&toDate, "to-date", "t", false, "mark weeks up to the current one")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

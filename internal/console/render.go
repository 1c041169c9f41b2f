package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
)

const rule = "═══════════════════════════════════════════════════════════"

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

// newStyles binds the styles to w so colors are dropped when w is not a
// terminal
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("244")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func writeSummary(w io.Writer, s styles, a *model.Analysis, l *layout.Layout) {
	row := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", s.label.Render(fmt.Sprintf("%-14s", label+":")), value)
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  %s\n", s.heading.Render("Summary"))
	fmt.Fprintf(w, "%s\n\n", rule)

	row("Region", a.Region.Label())
	row("Type", a.Type.Label)
	row("Disease", a.Disease.Label)
	row("Period", fmt.Sprintf("%d-%d", a.YearStart, a.YearEnd))
	row("Granularity", a.Granularity.Label)
	if a.Monthly() {
		row("Months", fmt.Sprintf("%d-%d", a.MonthStart, a.MonthEnd))
	}
	row("Forecast", fmt.Sprintf("%d years | alpha=%s", a.HorizonYears, strconv.FormatFloat(a.Alpha, 'f', -1, 64)))
	row("Output folder", l.Dir)

	fmt.Fprintf(w, "\n%s\n\n", rule)
}

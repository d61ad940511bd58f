package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"golang.org/x/term"
)

const progressLabel = "Building charts"

var (
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// reporter prints per-row progress. On a terminal it redraws a single bar
// line; otherwise it prints a counter line at every tenth of the work.
type reporter struct {
	w        io.Writer
	enabled  bool
	tty      bool
	bar      progress.Model
	lastStep int
	drawn    bool
}

func newReporter(w io.Writer, enabled bool) *reporter {
	return &reporter{
		w:        w,
		enabled:  enabled,
		tty:      isTerminal(w),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		lastStep: -1,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Update records that done of total rows have been handled.
func (r *reporter) Update(done, total int) {
	if !r.enabled || total <= 0 {
		return
	}
	if r.tty {
		fmt.Fprintf(r.w, "\r%s: %s %d/%d", progressLabel, r.bar.ViewAs(float64(done)/float64(total)), done, total)
		r.drawn = true
		return
	}
	pct := done * 100 / total
	if step := pct / 10; step != r.lastStep {
		r.lastStep = step
	} else if done != total {
		return
	}
	fmt.Fprintf(r.w, "%s: %d/%d (%d%%)\n", progressLabel, done, total, pct)
}

// Done terminates the bar line.
func (r *reporter) Done() {
	if r.drawn {
		fmt.Fprintln(r.w)
		r.drawn = false
	}
}

func printSummary(w io.Writer, res *models.Result) {
	check := doneStyle.Render("✅")
	fmt.Fprintf(w, "%s Images saved to: %s %s\n", check, pathStyle.Render(res.OutputDir),
		countStyle.Render(fmt.Sprintf("(%d charts, %d rows skipped)", len(res.Images), res.Skipped)))
	pages := fmt.Sprintf("(%d pages)", res.Pages)
	if len(res.Images) == 0 {
		pages = fmt.Sprintf("(%d blank page, no row had numeric values)", res.Pages)
	}
	fmt.Fprintf(w, "%s Multi-page PDF: %s %s\n", check, pathStyle.Render(res.Document), countStyle.Render(pages))
}

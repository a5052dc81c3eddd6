package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/yt-mp3/internal/download"
	"github.com/ytget/yt-mp3/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Result markers
const (
	markDone    = "✔"
	markSkipped = "↷"
	markFailed  = "✘"
)

const barWidth = 30

// reporter prints the event stream of one batch. One progress bar is
// drawn per item while it fetches.
type reporter struct {
	out   io.Writer
	quiet bool
	bar   *progressbar.ProgressBar
	total int
}

func newReporter(out io.Writer, quiet bool) *reporter {
	return &reporter{out: out, quiet: quiet}
}

// Handle is passed to download.Service.Run
func (r *reporter) Handle(ev download.Event) {
	switch ev.Type {
	case download.EventBatchStarted:
		r.total = ev.Total
		fmt.Fprintln(r.out, titleStyle.Render(fmt.Sprintf("Downloading %d item(s)", ev.Total)))

	case download.EventItemStatus:
		if r.bar != nil {
			r.bar.Describe(r.describe(ev.Item))
		}

	case download.EventItemProgress:
		if r.quiet || ev.Progress == nil {
			return
		}
		if r.bar == nil {
			r.bar = r.newBar(ev.Item, ev.Progress.Total)
		}
		if ev.Progress.Total > 0 {
			if r.bar.GetMax64() != ev.Progress.Total {
				r.bar.ChangeMax64(ev.Progress.Total)
			}
			_ = r.bar.Set64(ev.Progress.Downloaded)
		} else {
			_ = r.bar.Add64(0)
		}

	case download.EventItemDone:
		r.closeBar()
		fmt.Fprintf(r.out, "%s %s %s\n", okStyle.Render(markDone), ev.Item.GetDisplayTitle(), mutedStyle.Render(ev.Item.OutputPath))

	case download.EventItemSkipped:
		r.closeBar()
		fmt.Fprintf(r.out, "%s %s %s\n", mutedStyle.Render(markSkipped), ev.Item.GetDisplayTitle(), mutedStyle.Render("(already downloaded)"))

	case download.EventItemFailed:
		r.closeBar()
		msg := ev.Item.LastError
		if ev.Err != nil {
			msg = ev.Err.Error()
		}
		fmt.Fprintf(r.out, "%s %s: %s\n", errorStyle.Render(markFailed), ev.Item.GetDisplayTitle(), msg)

	case download.EventBatchDone:
		r.closeBar()
	}
}

func (r *reporter) describe(item *model.WorkItem) string {
	return fmt.Sprintf("[%d/%d] %s", item.Index+1, r.total, truncateRunes(item.GetDisplayTitle(), 40))
}

func (r *reporter) newBar(item *model.WorkItem, total int64) *progressbar.ProgressBar {
	if total <= 0 {
		total = -1
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(r.describe(item)),
		progressbar.OptionSetWidth(barWidth),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (r *reporter) closeBar() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}

// renderSummary formats a finished batch as a bordered panel
func renderSummary(s model.Summary) string {
	lines := []string{
		titleStyle.Render("Summary"),
		kv("Downloaded", fmt.Sprint(s.Succeeded)),
		kv("Skipped", fmt.Sprint(s.Skipped)),
		kv("Failed", fmt.Sprint(s.Failed)),
	}
	if !s.StartedAt.IsZero() && !s.FinishedAt.IsZero() {
		lines = append(lines, kv("Elapsed", s.FinishedAt.Sub(s.StartedAt).Round(time.Second).String()))
	}
	if s.Cancelled {
		lines = append(lines, errorStyle.Render("Cancelled before every item was processed"))
	}
	for _, f := range s.Files {
		lines = append(lines, okStyle.Render(markDone)+" "+f)
	}
	for _, e := range s.Errors {
		name := e.VideoID
		if name == "" {
			name = e.URL
		}
		lines = append(lines, errorStyle.Render(markFailed)+" "+name+": "+e.Message)
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func kv(k, v string) string {
	return fmt.Sprintf("%s: %s", mutedStyle.Render(k), v)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}

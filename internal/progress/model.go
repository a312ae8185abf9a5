package progress

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// doneMsg tells the model to render its final frame and quit.
type doneMsg struct{}

type modelStyles struct {
	Counts lipgloss.Style
	Done   lipgloss.Style
}

func defaultModelStyles() modelStyles {
	return modelStyles{
		Counts: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	}
}

// model renders a live progress bar driven by a shared Meter.
// The meter is updated by hashing workers; the model only reads it on ticks,
// so rendering never contends with the hot read loop.
type model struct {
	meter  *Meter
	bar    progress.Model
	styles modelStyles
	done   bool

	// interrupt cancels the run. The terminal is in raw mode while the bar
	// renders, so ctrl+c arrives here as a key press, not a signal.
	interrupt func()
}

func newModel(meter *Meter, interrupt func()) model {
	bar := progress.New(progress.WithDefaultGradient())
	return model{
		meter:     meter,
		bar:       bar,
		styles:    defaultModelStyles(),
		interrupt: interrupt,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.interrupt != nil {
				m.interrupt()
			}
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 30
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}
		return m, nil
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	bytes := m.meter.Bytes()
	files := m.meter.Files()
	totalFiles := m.meter.TotalFiles()

	counts := m.styles.Counts.Render(
		fmt.Sprintf("%d/%d files, %s", files, totalFiles, humanBytes(bytes)))

	if m.done {
		return m.styles.Done.Render("✓ ") + counts + "\n"
	}

	if frac := m.meter.Fraction(); frac >= 0 {
		return m.bar.ViewAs(frac) + " " + counts
	}
	return counts
}

// humanBytes formats a byte count for display.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

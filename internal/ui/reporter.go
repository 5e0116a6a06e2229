// Package ui provides terminal progress reporting for scaffold steps:
// an animated spinner when attached to a TTY, plain log lines otherwise.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// spinnerColor is the accent color for the interactive spinner.
const spinnerColor = "#F97316"

// Reporter receives scaffold step events. Close releases the terminal and
// must be called before printing anything else.
type Reporter interface {
	StepStarted(name string)
	StepDone(name string)
	Close()
}

// NewReporter creates a Reporter appropriate for the current terminal:
// interactive (spinner) when os.Stdout is a TTY, headless (log lines to w)
// otherwise.
func NewReporter(w io.Writer) Reporter {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return newSpinnerReporter()
	}
	return NewLogReporter(w)
}

// --- logReporter ---

// logReporter implements Reporter with plain text log output.
type logReporter struct {
	writer io.Writer
}

// NewLogReporter creates a headless Reporter writing one line per
// completed step.
func NewLogReporter(w io.Writer) Reporter {
	return &logReporter{writer: w}
}

func (r *logReporter) StepStarted(string) {}

func (r *logReporter) StepDone(name string) {
	_, _ = fmt.Fprintf(r.writer, "✓ %s\n", name)
}

func (r *logReporter) Close() {}

// --- spinnerReporter ---

// stepTitleMsg is sent to update the spinner title.
type stepTitleMsg string

// stepStopMsg is sent to stop the spinner.
type stepStopMsg struct{}

// stepModel is the bubbletea Model for the animated step spinner.
type stepModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newStepModel() stepModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(spinnerColor))
	return stepModel{spinner: s}
}

func (m stepModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTitleMsg:
		m.title = string(msg)
		return m, nil
	case stepStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m stepModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// spinnerReporter implements Reporter with an animated bubbles spinner
// whose title tracks the current step.
type spinnerReporter struct {
	program *tea.Program
	once    sync.Once
}

func newSpinnerReporter() *spinnerReporter {
	p := tea.NewProgram(newStepModel())

	r := &spinnerReporter{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return r
}

// StepStarted updates the spinner title to the current step.
func (r *spinnerReporter) StepStarted(name string) {
	r.program.Send(stepTitleMsg(name))
}

func (r *spinnerReporter) StepDone(string) {}

// Close stops the spinner and waits for the terminal to be released.
func (r *spinnerReporter) Close() {
	r.once.Do(func() {
		r.program.Send(stepStopMsg{})
		r.program.Wait()
	})
}

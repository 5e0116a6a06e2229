package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// CLI color palette.
const (
	colorSuccess = "#22C55E"
	colorError   = "#EF4444"
	colorWarn    = "#F59E0B"
	colorMuted   = "#9CA3AF"
	colorBorder  = "#4B5563"
)

var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess)).Bold(true)
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)).Bold(true)
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn))
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)
)

// kvPair is a labeled value rendered by renderKeyValueLines.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs as aligned "key  value" lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%s  %s", cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return strings.Join(lines, "\n")
}

// renderCard renders a bordered card with a title line and sections.
func renderCard(title string, sections ...string) string {
	parts := append([]string{title}, sections...)
	return cardStyle.Render(strings.Join(parts, "\n\n"))
}

// renderSuccessCard renders a card with a green check title.
func renderSuccessCard(title string, sections ...string) string {
	return renderCard(cliSuccess.Render("✓ "+title), sections...)
}

// renderErrorCard renders a card with a red cross title.
func renderErrorCard(title string, sections ...string) string {
	return renderCard(cliError.Render("✗ "+title), sections...)
}

// renderMarkdown renders markdown for the terminal via glamour. When
// stdout is not a TTY, or rendering fails, the raw markdown is returned
// so piped output stays readable.
func renderMarkdown(md string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

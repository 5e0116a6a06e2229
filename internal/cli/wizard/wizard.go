// Package wizard provides the interactive huh-based form that collects a
// new game module's identity when flags are not supplied.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/roshni-games/gamemod/pkg/models"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")

// Result holds the user's answers.
type Result struct {
	ID          string
	DisplayName string
	Category    string
}

// categoryDescriptions maps each category to its wizard blurb.
var categoryDescriptions = map[models.Category]string{
	models.CategoryPuzzle:   "Logic and brain teasers",
	models.CategoryWord:     "Letters, words and vocabulary",
	models.CategoryArcade:   "Reflex-driven action",
	models.CategoryStrategy: "Planning and resource play",
	models.CategoryCasual:   "Quick pick-up-and-play sessions",
}

// Run executes the wizard. Fields already filled in defaults are used as
// initial values so flag-provided answers are not asked again.
func Run(defaults Result) (*Result, error) {
	res := defaults
	if res.Category == "" {
		res.Category = string(models.CategoryPuzzle)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Module id").
				Description("Lowercase letters, digits, '-' and '_' (e.g., puzzle-001)").
				Value(&res.ID).
				Validate(models.ValidateID),
			huh.NewInput().
				Title("Display name").
				Description("Shown in the game catalog (e.g., \"Amazing Puzzle\")").
				Value(&res.DisplayName).
				Validate(models.ValidateDisplayName),
			huh.NewSelect[string]().
				Title("Category").
				Options(CategoryOptions()...).
				Value(&res.Category),
		),
	).
		WithTheme(newWizardTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return &res, nil
}

// CategoryOptions builds the select options for all game categories.
func CategoryOptions() []huh.Option[string] {
	cats := models.Categories()
	opts := make([]huh.Option[string], len(cats))
	for i, c := range cats {
		label := string(c)
		if desc := categoryDescriptions[c]; desc != "" {
			label = string(c) + " - " + desc
		}
		opts[i] = huh.NewOption(label, string(c))
	}
	return opts
}

// newWizardTheme creates a huh.Theme with gamemod branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.Color("#F97316")
	green := lipgloss.Color("#22C55E")
	muted := lipgloss.Color("#9CA3AF")
	border := lipgloss.Color("#4B5563")

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

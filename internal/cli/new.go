package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/roshni-games/gamemod/internal/cli/wizard"
	"github.com/roshni-games/gamemod/internal/config"
	"github.com/roshni-games/gamemod/internal/defs"
	"github.com/roshni-games/gamemod/internal/scaffold"
	"github.com/roshni-games/gamemod/internal/ui"
	"github.com/roshni-games/gamemod/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new [id]",
	Short: "Create a new game module from the template",
	Long: `Create a new game module by cloning the shared template.

Usage patterns:
  gamemod new puzzle-007 --name "Block Drop" --category puzzle
  gamemod new                Ask for id, name and category interactively

The module is created under the base module directory (default: game/),
with all Gradle and Kotlin placeholders rewritten and a generated
GameConfig.kt. On any failure the partially created module is removed.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("id", "", "Module id (e.g., puzzle-001)")
	newCmd.Flags().String("name", "", `Display name (e.g., "Amazing Puzzle")`)
	newCmd.Flags().String("category", "", "Game category: puzzle, word, arcade, strategy, casual")
	newCmd.Flags().String("base-dir", "", `Base module directory (default: from gamemod.yaml or "game")`)
	newCmd.Flags().Bool("non-interactive", false, "Skip the wizard; require id, --name and --category")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateNewFlags validates flag values before execution. Invalid values
// never reach the scaffold core.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	category := getStringFlag(cmd, "category")
	if category != "" {
		valid := make([]string, 0, 5)
		for _, c := range models.Categories() {
			valid = append(valid, string(c))
		}
		if !slices.Contains(valid, category) {
			return fmt.Errorf("invalid --category value %q: must be one of: puzzle, word, arcade, strategy, casual", category)
		}
	}

	if id := getStringFlag(cmd, "id"); id != "" {
		if err := models.ValidateID(id); err != nil {
			return fmt.Errorf("invalid --id value %q: %w", id, err)
		}
	}

	return nil
}

// runNew executes the module scaffolding workflow.
func runNew(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("load %s: %w", defs.GamemodYAML, err)
	}
	if baseDir := getStringFlag(cmd, "base-dir"); baseDir != "" {
		cfg.BaseDir = baseDir
	}

	id := getStringFlag(cmd, "id")
	if id == "" && len(args) > 0 {
		id = args[0]
	}
	name := getStringFlag(cmd, "name")
	category := getStringFlag(cmd, "category")

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	interactive := !nonInteractive && isatty.IsTerminal(os.Stdin.Fd())

	if id == "" || name == "" || category == "" {
		if !interactive {
			return fmt.Errorf("id, --name and --category are required in non-interactive mode")
		}

		result, err := wizard.Run(wizard.Result{ID: id, DisplayName: name, Category: category})
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Module creation cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		id = result.ID
		name = result.DisplayName
		category = result.Category
	}

	identity := models.Identity{
		ID:          id,
		DisplayName: name,
		Category:    models.Category(category),
	}
	if err := identity.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var reporter ui.Reporter
	if interactive {
		reporter = ui.NewReporter(out)
	} else {
		reporter = ui.NewLogReporter(out)
	}

	inst := scaffold.NewInstantiator(scaffold.Options{
		BaseDir:  cfg.BaseDir,
		Reporter: reporter,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := inst.Instantiate(ctx, identity)
	reporter.Close()
	if err != nil {
		_, _ = fmt.Fprintln(out, renderErrorCard("Module creation failed", cliWarn.Render(err.Error())))
		return fmt.Errorf("create module %q: %w", identity.ID, err)
	}

	details := renderKeyValueLines([]kvPair{
		{"Module", result.ModulePath},
		{"Display name", identity.DisplayName},
		{"Category", string(identity.Category)},
		{"Type name", scaffold.TypeName(identity.ID)},
	})
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Game module created", details))
	_, _ = fmt.Fprint(out, renderMarkdown(nextStepsMarkdown(cfg, identity.ID)))

	return nil
}

// nextStepsMarkdown lists the manual registration steps that remain after
// scaffolding. These are reminders only; the tool makes no changes outside
// the new module directory.
func nextStepsMarkdown(cfg *config.Config, id string) string {
	modulePath := filepath.ToSlash(filepath.Join(cfg.BaseDir, id))
	return fmt.Sprintf(`## Next steps

1. Add the module to settings.gradle: `+"`include(\":%s:%s\")`"+`
2. Add the module to app/build.gradle.kts dependencies
3. Register the module in dynamic_feature_manifest.xml
4. Customize the game logic in %s/
5. Add game assets to %s/src/main/assets/
`, filepath.Base(cfg.BaseDir), id, modulePath, modulePath)
}

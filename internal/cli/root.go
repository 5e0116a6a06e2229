// Package cli wires the gamemod command-line interface: the cobra command
// tree, flag validation, interactive wizard gating, and terminal output.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roshni-games/gamemod/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "gamemod",
	Short: "Scaffold new game modules for the Roshni Games app",
	Long: `gamemod creates new Android game modules from the shared template.

It clones game/template/ into game/<id>/, rewrites the Gradle and Kotlin
placeholders to the new module's identity, and generates its GameConfig.kt.
Registering the module in settings.gradle, the app dependencies and the
dynamic feature manifest remains a manual step.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gamemod %s\n", version.GetVersion()))
}

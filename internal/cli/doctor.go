package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roshni-games/gamemod/internal/config"
	"github.com/roshni-games/gamemod/internal/defs"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the game module template",
	Long: `Check that the template tree is present and still carries the
placeholders gamemod rewrites. Warnings mark optional parts whose absence
turns the matching scaffold step into a no-op; a missing template root is
fatal.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().String("base-dir", "", `Base module directory (default: from gamemod.yaml or "game")`)
}

// checkStatus is the outcome of a single doctor check.
type checkStatus int

const (
	checkOK checkStatus = iota
	checkWarn
	checkFail
)

// templateCheck is a single named health check.
type templateCheck struct {
	name string
	run  func() (checkStatus, string)
}

// runDoctor executes all template health checks and renders the report.
func runDoctor(cmd *cobra.Command, _ []string) error {
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

	templateRoot := cfg.TemplateRoot()
	descriptorPath := filepath.Join(templateRoot, defs.BuildDescriptor)
	sourceDir := filepath.Join(templateRoot, filepath.FromSlash(defs.KotlinSourceRoot), defs.TemplatePackageSegment)

	checks := []templateCheck{
		{
			name: "template root",
			run: func() (checkStatus, string) {
				info, err := os.Stat(templateRoot)
				if err != nil || !info.IsDir() {
					return checkFail, fmt.Sprintf("%s does not exist", templateRoot)
				}
				return checkOK, templateRoot
			},
		},
		{
			name: "build descriptor",
			run: func() (checkStatus, string) {
				data, err := os.ReadFile(descriptorPath)
				if err != nil {
					return checkWarn, fmt.Sprintf("%s missing; descriptor rewrite will be skipped", defs.BuildDescriptor)
				}
				content := string(data)
				if !strings.Contains(content, defs.QualifiedPlaceholder) {
					return checkWarn, fmt.Sprintf("placeholder %q not found", defs.QualifiedPlaceholder)
				}
				if strings.Count(content, defs.BarePlaceholder) <= strings.Count(content, defs.QualifiedPlaceholder) {
					return checkWarn, fmt.Sprintf("no bare %q placeholder found", defs.BarePlaceholder)
				}
				return checkOK, "both placeholders present"
			},
		},
		{
			name: "template sources",
			run: func() (checkStatus, string) {
				info, err := os.Stat(sourceDir)
				if err != nil || !info.IsDir() {
					return checkWarn, "template package directory missing; rename and rewrite will be skipped"
				}
				count, hasToken := scanKotlinSources(sourceDir)
				if count == 0 {
					return checkWarn, "no Kotlin sources in template package"
				}
				if !hasToken {
					return checkWarn, fmt.Sprintf("no %q type token in template sources", defs.TypeToken)
				}
				return checkOK, fmt.Sprintf("%d Kotlin source file(s)", count)
			},
		},
	}

	out := cmd.OutOrStdout()
	failed := false
	lines := make([]string, 0, len(checks))

	for _, c := range checks {
		status, detail := c.run()
		switch status {
		case checkOK:
			lines = append(lines, fmt.Sprintf("%s %s  %s", cliSuccess.Render("✓"), c.name, cliMuted.Render(detail)))
		case checkWarn:
			lines = append(lines, fmt.Sprintf("%s %s  %s", cliWarn.Render("!"), c.name, cliMuted.Render(detail)))
		case checkFail:
			failed = true
			lines = append(lines, fmt.Sprintf("%s %s  %s", cliError.Render("✗"), c.name, cliMuted.Render(detail)))
		}
	}

	_, _ = fmt.Fprintln(out, renderCard("Template health", strings.Join(lines, "\n")))

	if failed {
		return fmt.Errorf("template at %s is not usable", templateRoot)
	}
	return nil
}

// scanKotlinSources counts .kt files under dir and reports whether any of
// them references the template type token.
func scanKotlinSources(dir string) (int, bool) {
	count := 0
	hasToken := false
	_ = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil || entry.IsDir() || filepath.Ext(path) != defs.KotlinExt {
			return nil
		}
		count++
		if !hasToken {
			if data, readErr := os.ReadFile(path); readErr == nil {
				hasToken = strings.Contains(string(data), defs.TypeToken)
			}
		}
		return nil
	})
	return count, hasToken
}

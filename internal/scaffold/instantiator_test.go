package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roshni-games/gamemod/internal/defs"
	"github.com/roshni-games/gamemod/pkg/models"
)

const testBuildGradle = `plugins {
    id("roshni.game-module")
}

android {
    namespace = "com.roshni.games.game.GAME_ID"
}

// module: GAME_ID
`

const testGameSource = `package com.roshni.games.game.template

import com.roshni.games.core.GameModule

class TemplateGame : GameModule {
    override fun start() {
        TemplateEngine().boot()
    }
}
`

const testEngineSource = `package com.roshni.games.game.template.engine

class TemplateEngine {
    fun boot() = Unit
}
`

// writeTestTemplate builds a realistic template tree under a fresh base
// directory and returns the base directory path.
func writeTestTemplate(t *testing.T) string {
	t.Helper()
	baseDir := filepath.Join(t.TempDir(), "game")

	files := map[string]string{
		"template/build.gradle.kts": testBuildGradle,
		"template/src/main/kotlin/com/roshni/games/game/template/TemplateGame.kt":          testGameSource,
		"template/src/main/kotlin/com/roshni/games/game/template/engine/TemplateEngine.kt": testEngineSource,
		"template/src/main/AndroidManifest.xml":                                            "<manifest/>",
		"template/src/main/assets/.gitkeep":                                                "",
	}
	for rel, content := range files {
		path := filepath.Join(baseDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}
	return baseDir
}

// snapshotTree reads every file under root into a path-to-content map.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return snap
}

func testIdentity() models.Identity {
	return models.Identity{
		ID:          "puzzle-007",
		DisplayName: "Block Drop",
		Category:    models.CategoryPuzzle,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile %s: %v", path, err)
	}
	return string(data)
}

func TestInstantiateScenario(t *testing.T) {
	baseDir := writeTestTemplate(t)
	inst := NewInstantiator(Options{BaseDir: baseDir})

	result, err := inst.Instantiate(context.Background(), testIdentity())
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}

	wantPath := filepath.Join(baseDir, "puzzle-007")
	if result.ModulePath != wantPath {
		t.Errorf("ModulePath = %q, want %q", result.ModulePath, wantPath)
	}
	if len(result.Steps) != 5 {
		t.Errorf("Steps = %v, want 5 entries", result.Steps)
	}

	t.Run("build_descriptor_rewritten", func(t *testing.T) {
		content := readFile(t, filepath.Join(wantPath, "build.gradle.kts"))
		if !strings.Contains(content, `"com.roshni.games.game.puzzle-007"`) {
			t.Errorf("qualified placeholder not rewritten:\n%s", content)
		}
		if !strings.Contains(content, "// module: puzzle-007") {
			t.Errorf("bare placeholder not rewritten:\n%s", content)
		}
		if strings.Contains(content, "GAME_ID") {
			t.Errorf("placeholder still present:\n%s", content)
		}
	})

	t.Run("package_directory_renamed", func(t *testing.T) {
		oldDir := filepath.Join(wantPath, "src", "main", "kotlin", "com", "roshni", "games", "game", "template")
		newDir := filepath.Join(wantPath, "src", "main", "kotlin", "com", "roshni", "games", "game", "puzzle-007")
		if _, err := os.Stat(oldDir); !os.IsNotExist(err) {
			t.Errorf("template package directory still exists")
		}
		// File names are not rewritten, only directory path and contents.
		if _, err := os.Stat(filepath.Join(newDir, "engine", "TemplateEngine.kt")); err != nil {
			t.Errorf("nested source did not move with its directory: %v", err)
		}
	})

	t.Run("sources_rewritten_completely", func(t *testing.T) {
		newDir := filepath.Join(wantPath, "src", "main", "kotlin", "com", "roshni", "games", "game", "puzzle-007")

		game := readFile(t, filepath.Join(newDir, "TemplateGame.kt"))
		if !strings.Contains(game, "package com.roshni.games.game.puzzle-007\n") {
			t.Errorf("package declaration not rewritten:\n%s", game)
		}
		if !strings.Contains(game, "class Puzzle007Game") || !strings.Contains(game, "Puzzle007Engine().boot()") {
			t.Errorf("type token not rewritten:\n%s", game)
		}

		engine := readFile(t, filepath.Join(newDir, "engine", "TemplateEngine.kt"))
		if !strings.Contains(engine, "package com.roshni.games.game.puzzle-007.engine\n") {
			t.Errorf("nested package declaration not rewritten:\n%s", engine)
		}

		for _, content := range []string{game, engine} {
			if strings.Contains(content, "Template") || strings.Contains(content, "game.template") {
				t.Errorf("template token remains after rewrite:\n%s", content)
			}
		}
	})

	t.Run("game_config_emitted", func(t *testing.T) {
		path := filepath.Join(wantPath, "src", "main", "kotlin", "com", "roshni", "games", "game", "puzzle-007", "GameConfig.kt")
		content := readFile(t, path)

		for _, want := range []string{
			"package com.roshni.games.game.puzzle-007",
			`GAME_ID = "puzzle-007"`,
			`GAME_NAME = "Block Drop"`,
			`CATEGORY = "puzzle"`,
			`VERSION = "1.0.0"`,
			"MIN_SDK = 24",
			"TARGET_SDK = 34",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("GameConfig.kt missing %q:\n%s", want, content)
			}
		}
	})

	t.Run("untouched_files_copied_verbatim", func(t *testing.T) {
		manifest := readFile(t, filepath.Join(wantPath, "src", "main", "AndroidManifest.xml"))
		if manifest != "<manifest/>" {
			t.Errorf("AndroidManifest.xml modified: %q", manifest)
		}
	})
}

func TestInstantiateModuleExists(t *testing.T) {
	baseDir := writeTestTemplate(t)
	inst := NewInstantiator(Options{BaseDir: baseDir})

	if _, err := inst.Instantiate(context.Background(), testIdentity()); err != nil {
		t.Fatalf("first Instantiate error: %v", err)
	}
	first := snapshotTree(t, filepath.Join(baseDir, "puzzle-007"))

	_, err := inst.Instantiate(context.Background(), testIdentity())
	if !errors.Is(err, ErrModuleExists) {
		t.Fatalf("second Instantiate error = %v, want ErrModuleExists", err)
	}

	// The first module must be untouched by the failed second call.
	second := snapshotTree(t, filepath.Join(baseDir, "puzzle-007"))
	if len(first) != len(second) {
		t.Fatalf("module file count changed: %d != %d", len(first), len(second))
	}
	for rel, content := range first {
		if second[rel] != content {
			t.Errorf("module file %q changed after failed second call", rel)
		}
	}
}

func TestInstantiateTemplateMissing(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "game")
	inst := NewInstantiator(Options{BaseDir: baseDir})

	_, err := inst.Instantiate(context.Background(), testIdentity())
	if !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("Instantiate error = %v, want ErrTemplateMissing", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "puzzle-007")); !os.IsNotExist(err) {
		t.Error("target directory created despite missing template")
	}
}

func TestInstantiateOptionalPartsAbsent(t *testing.T) {
	t.Run("missing_build_descriptor", func(t *testing.T) {
		baseDir := writeTestTemplate(t)
		if err := os.Remove(filepath.Join(baseDir, "template", "build.gradle.kts")); err != nil {
			t.Fatalf("Remove error: %v", err)
		}

		inst := NewInstantiator(Options{BaseDir: baseDir})
		result, err := inst.Instantiate(context.Background(), testIdentity())
		if err != nil {
			t.Fatalf("Instantiate error: %v", err)
		}
		if len(result.Steps) != 5 {
			t.Errorf("Steps = %v, want 5 entries", result.Steps)
		}
	})

	t.Run("missing_source_directory", func(t *testing.T) {
		baseDir := writeTestTemplate(t)
		if err := os.RemoveAll(filepath.Join(baseDir, "template", "src")); err != nil {
			t.Fatalf("RemoveAll error: %v", err)
		}

		inst := NewInstantiator(Options{BaseDir: baseDir})
		_, err := inst.Instantiate(context.Background(), testIdentity())
		if err != nil {
			t.Fatalf("Instantiate error: %v", err)
		}

		// The config file is still emitted, in a freshly created package dir.
		path := filepath.Join(baseDir, "puzzle-007", "src", "main", "kotlin",
			"com", "roshni", "games", "game", "puzzle-007", "GameConfig.kt")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("GameConfig.kt not emitted: %v", err)
		}
	})
}

func TestInstantiateRollback(t *testing.T) {
	t.Run("copy_failure_leaves_no_target", func(t *testing.T) {
		templateBase := writeTestTemplate(t)

		// A base directory that is a regular file makes the very first
		// mkdir of the copy step fail.
		baseDir := filepath.Join(t.TempDir(), "game")
		if err := os.WriteFile(baseDir, []byte("not a directory"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}

		inst := NewInstantiator(Options{
			BaseDir:      baseDir,
			TemplateRoot: filepath.Join(templateBase, "template"),
		})
		_, err := inst.Instantiate(context.Background(), testIdentity())
		if !errors.Is(err, ErrCopyFailed) {
			t.Fatalf("Instantiate error = %v, want ErrCopyFailed", err)
		}
		// The stat fails with ENOTDIR rather than ENOENT here; either way
		// the target must not exist.
		if _, err := os.Stat(filepath.Join(baseDir, "puzzle-007")); err == nil {
			t.Error("target exists after failed copy")
		}
	})

	t.Run("rewrite_failure_removes_target", func(t *testing.T) {
		baseDir := writeTestTemplate(t)

		// Replace the build descriptor with a directory of the same name:
		// the copy succeeds but the descriptor rewrite cannot read it.
		descriptor := filepath.Join(baseDir, "template", "build.gradle.kts")
		if err := os.Remove(descriptor); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
		if err := os.MkdirAll(filepath.Join(descriptor, "oops"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}

		inst := NewInstantiator(Options{BaseDir: baseDir})
		_, err := inst.Instantiate(context.Background(), testIdentity())
		if !errors.Is(err, ErrRewriteFailed) {
			t.Fatalf("Instantiate error = %v, want ErrRewriteFailed", err)
		}
		if _, err := os.Stat(filepath.Join(baseDir, "puzzle-007")); !os.IsNotExist(err) {
			t.Error("target exists after failed rewrite; rollback did not run")
		}
	})
}

func TestInstantiateTemplateUntouched(t *testing.T) {
	t.Run("after_success", func(t *testing.T) {
		baseDir := writeTestTemplate(t)
		templateRoot := filepath.Join(baseDir, "template")
		before := snapshotTree(t, templateRoot)

		inst := NewInstantiator(Options{BaseDir: baseDir})
		if _, err := inst.Instantiate(context.Background(), testIdentity()); err != nil {
			t.Fatalf("Instantiate error: %v", err)
		}

		after := snapshotTree(t, templateRoot)
		if len(before) != len(after) {
			t.Fatalf("template file count changed: %d != %d", len(before), len(after))
		}
		for rel, content := range before {
			if after[rel] != content {
				t.Errorf("template file %q changed", rel)
			}
		}
	})

	t.Run("after_failure", func(t *testing.T) {
		baseDir := writeTestTemplate(t)
		templateRoot := filepath.Join(baseDir, "template")

		inst := NewInstantiator(Options{BaseDir: baseDir})
		if _, err := inst.Instantiate(context.Background(), testIdentity()); err != nil {
			t.Fatalf("Instantiate error: %v", err)
		}
		before := snapshotTree(t, templateRoot)

		if _, err := inst.Instantiate(context.Background(), testIdentity()); !errors.Is(err, ErrModuleExists) {
			t.Fatalf("expected ErrModuleExists, got %v", err)
		}

		after := snapshotTree(t, templateRoot)
		for rel, content := range before {
			if after[rel] != content {
				t.Errorf("template file %q changed after failed call", rel)
			}
		}
	})
}

func TestInstantiateContextCancelled(t *testing.T) {
	baseDir := writeTestTemplate(t)
	inst := NewInstantiator(Options{BaseDir: baseDir})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inst.Instantiate(ctx, testIdentity())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Instantiate error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "puzzle-007")); !os.IsNotExist(err) {
		t.Error("target exists after cancelled run")
	}
}

func TestInstantiateInvalidIdentity(t *testing.T) {
	baseDir := writeTestTemplate(t)
	inst := NewInstantiator(Options{BaseDir: baseDir})

	id := models.Identity{ID: "Bad Id!", DisplayName: "x", Category: models.CategoryPuzzle}
	if _, err := inst.Instantiate(context.Background(), id); !errors.Is(err, models.ErrInvalidID) {
		t.Fatalf("Instantiate error = %v, want models.ErrInvalidID", err)
	}
}

// recordingReporter captures step events in order.
type recordingReporter struct {
	events []string
}

func (r *recordingReporter) StepStarted(name string) { r.events = append(r.events, "start "+name) }
func (r *recordingReporter) StepDone(name string)    { r.events = append(r.events, "done "+name) }

func TestInstantiateReportsSteps(t *testing.T) {
	baseDir := writeTestTemplate(t)
	rec := &recordingReporter{}
	inst := NewInstantiator(Options{BaseDir: baseDir, Reporter: rec})

	result, err := inst.Instantiate(context.Background(), testIdentity())
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}

	if len(rec.events) != 2*len(result.Steps) {
		t.Fatalf("events = %v, want start/done pair per step", rec.events)
	}
	for i, name := range result.Steps {
		if rec.events[2*i] != "start "+name || rec.events[2*i+1] != "done "+name {
			t.Errorf("step %d events = %q, %q, want start/done for %q",
				i, rec.events[2*i], rec.events[2*i+1], name)
		}
	}
	if result.Steps[0] != "copy template tree" {
		t.Errorf("first step = %q, want copy template tree", result.Steps[0])
	}
	if result.Steps[len(result.Steps)-1] != "write "+defs.GameConfigFile {
		t.Errorf("last step = %q, want config emission", result.Steps[len(result.Steps)-1])
	}
}

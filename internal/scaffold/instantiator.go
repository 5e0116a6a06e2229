package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roshni-games/gamemod/internal/defs"
	"github.com/roshni-games/gamemod/pkg/models"
)

// Reporter receives step progress events during instantiation. Events are
// delivered sequentially from the calling goroutine.
type Reporter interface {
	// StepStarted is called before a step begins.
	StepStarted(name string)

	// StepDone is called after a step completed successfully.
	StepDone(name string)
}

// Options configures an Instantiator.
type Options struct {
	// BaseDir is the directory holding the template and all game modules.
	BaseDir string

	// TemplateRoot is the template directory. Defaults to
	// BaseDir/template when empty.
	TemplateRoot string

	// Reporter receives step progress events. May be nil.
	Reporter Reporter

	// Logger receives structured logs. Defaults to a discard logger.
	Logger *slog.Logger
}

// Result summarizes a successful instantiation.
type Result struct {
	// ModulePath is the path of the created module directory.
	ModulePath string

	// Steps lists the completed step descriptions in execution order.
	Steps []string
}

// Instantiator materializes a new game module from the template tree,
// or leaves no trace on failure.
type Instantiator interface {
	// Instantiate creates BaseDir/<id> from the template. On any failure
	// after the target directory was created, the directory is removed
	// (best effort) before the error is returned.
	Instantiate(ctx context.Context, id models.Identity) (*Result, error)
}

// moduleInstantiator is the concrete implementation of Instantiator.
type moduleInstantiator struct {
	baseDir      string
	templateRoot string
	reporter     Reporter
	logger       *slog.Logger
}

// NewInstantiator creates an Instantiator with the given options.
func NewInstantiator(opts Options) Instantiator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	templateRoot := opts.TemplateRoot
	if templateRoot == "" {
		templateRoot = filepath.Join(opts.BaseDir, defs.TemplateDirName)
	}
	return &moduleInstantiator{
		baseDir:      filepath.Clean(opts.BaseDir),
		templateRoot: filepath.Clean(templateRoot),
		reporter:     opts.Reporter,
		logger:       logger,
	}
}

// Instantiate creates a new game module from the template.
func (m *moduleInstantiator) Instantiate(ctx context.Context, id models.Identity) (*Result, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Preconditions are checked before any mutation.
	info, err := os.Stat(m.templateRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, m.templateRoot)
	}

	modulePath := filepath.Join(m.baseDir, id.ID)
	if _, err := os.Stat(modulePath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleExists, modulePath)
	}

	m.logger.Info("instantiating game module",
		"id", id.ID,
		"name", id.DisplayName,
		"category", id.Category,
		"template", m.templateRoot,
	)

	result := &Result{ModulePath: modulePath}
	if err := m.runSteps(ctx, id, modulePath, result); err != nil {
		// Rollback: the filesystem must end up without a module directory.
		if rmErr := os.RemoveAll(modulePath); rmErr != nil {
			m.logger.Warn("rollback failed", "path", modulePath, "error", rmErr)
		}
		m.logger.Error("instantiation failed", "id", id.ID, "error", err)
		return nil, err
	}

	m.logger.Info("game module created", "path", modulePath, "steps", len(result.Steps))
	return result, nil
}

// step couples a human-readable description with its action. The
// descriptions double as the progress surface reported to the caller.
type step struct {
	name string
	run  func() error
}

// runSteps executes the instantiation steps strictly in order, each
// validated before the next begins.
func (m *moduleInstantiator) runSteps(ctx context.Context, id models.Identity, modulePath string, result *Result) error {
	typeName := TypeName(id.ID)
	sourceRoot := filepath.Join(modulePath, filepath.FromSlash(defs.KotlinSourceRoot))
	srcDir := filepath.Join(sourceRoot, defs.TemplatePackageSegment)
	dstDir := filepath.Join(sourceRoot, id.ID)

	steps := []step{
		{
			name: "copy template tree",
			run:  func() error { return m.copyTemplate(ctx, modulePath) },
		},
		{
			name: "rewrite build descriptor",
			run:  func() error { return rewriteBuildDescriptor(modulePath, id.ID) },
		},
		{
			name: "rename package directory",
			run:  func() error { return renamePackageDir(srcDir, dstDir) },
		},
		{
			name: "rewrite Kotlin sources",
			run:  func() error { return rewriteKotlinSources(dstDir, id.ID, typeName) },
		},
		{
			name: "write " + defs.GameConfigFile,
			run:  func() error { return writeGameConfig(dstDir, id) },
		},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.reporter != nil {
			m.reporter.StepStarted(s.name)
		}
		if err := s.run(); err != nil {
			return err
		}
		if m.reporter != nil {
			m.reporter.StepDone(s.name)
		}
		result.Steps = append(result.Steps, s.name)
	}
	return nil
}

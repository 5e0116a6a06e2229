package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roshni-games/gamemod/internal/defs"
)

// copyTemplate deep-copies the template tree into modulePath, preserving
// structure and executable bits. This is the only step that creates the
// module directory; a failure may leave a partial tree for the caller's
// rollback to remove. The template itself is only ever read.
func (m *moduleInstantiator) copyTemplate(ctx context.Context, modulePath string) error {
	fsys := os.DirFS(m.templateRoot)

	walkErr := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each entry
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." {
			return os.MkdirAll(modulePath, defs.DirPerm)
		}

		dest := filepath.Join(modulePath, filepath.FromSlash(path))
		if entry.IsDir() {
			return os.MkdirAll(dest, defs.DirPerm)
		}

		data, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			return readErr
		}

		perm := fs.FileMode(defs.FilePerm)
		if info, infoErr := entry.Info(); infoErr == nil && info.Mode()&0o111 != 0 {
			perm = defs.ExecPerm // keep gradlew and hook scripts executable
		}
		return os.WriteFile(dest, data, perm)
	})

	if walkErr != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, walkErr)
	}
	return nil
}

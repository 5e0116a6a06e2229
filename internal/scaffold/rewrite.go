package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/roshni-games/gamemod/internal/defs"
	"github.com/roshni-games/gamemod/pkg/models"
)

// rewriteBuildDescriptor substitutes the module id into build.gradle.kts.
// The qualified placeholder is replaced before the bare one so that
// qualified occurrences are not substituted twice. A missing descriptor is
// not an error: the step is skipped silently.
//
// Substitution is literal-substring, not token-scoped, matching the
// contract the existing template and its consumers were built against.
func rewriteBuildDescriptor(modulePath, id string) error {
	path := filepath.Join(modulePath, defs.BuildDescriptor)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrRewriteFailed, defs.BuildDescriptor, err)
	}

	content := string(data)
	content = strings.ReplaceAll(content, defs.QualifiedPlaceholder, defs.PackagePrefix+"."+id)
	content = strings.ReplaceAll(content, defs.BarePlaceholder, id)

	if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrRewriteFailed, defs.BuildDescriptor, err)
	}
	return nil
}

// renamePackageDir moves the template namespace directory to the id-named
// one, preserving all contents. A missing source directory is not an
// error: the step is skipped silently.
func renamePackageDir(srcDir, dstDir string) error {
	if _, err := os.Stat(srcDir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: stat %s: %v", ErrRewriteFailed, srcDir, err)
	}
	if err := os.Rename(srcDir, dstDir); err != nil {
		return fmt.Errorf("%w: %v", ErrRewriteFailed, err)
	}
	return nil
}

// rewriteKotlinSources rewrites every .kt file under dir (recursive):
// first the template package declaration, then every occurrence of the
// type token. Files are independent, so processing order does not affect
// the result. A missing directory is not an error.
func rewriteKotlinSources(dir, id, typeName string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: stat %s: %v", ErrRewriteFailed, dir, err)
	}

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != defs.KotlinExt {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		content := string(data)
		content = strings.ReplaceAll(content, defs.TemplatePackageDecl, "package "+defs.PackagePrefix+"."+id)
		content = strings.ReplaceAll(content, defs.TypeToken, typeName)

		return os.WriteFile(path, []byte(content), defs.FilePerm)
	})

	if walkErr != nil {
		return fmt.Errorf("%w: %v", ErrRewriteFailed, walkErr)
	}
	return nil
}

// gameConfigSource is the generated GameConfig.kt. It is produced from a
// format string rather than placeholder substitution because the file
// does not exist in the template tree.
const gameConfigSource = `package %s.%s

// Game configuration for %s
object GameConfig {
    const val GAME_ID = "%s"
    const val GAME_NAME = "%s"
    const val CATEGORY = "%s"
    const val VERSION = "%s"
    const val MIN_SDK = %d
    const val TARGET_SDK = %d
}
`

// writeGameConfig emits the generated GameConfig.kt into dir. The
// directory is created if the template carried no source tree, so the
// module always ships a config file.
func writeGameConfig(dir string, id models.Identity) error {
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrRewriteFailed, dir, err)
	}

	content := fmt.Sprintf(gameConfigSource,
		defs.PackagePrefix, id.ID,
		id.DisplayName,
		id.ID,
		id.DisplayName,
		id.Category,
		defs.DefaultGameVersion,
		defs.DefaultMinSDK,
		defs.DefaultTargetSDK,
	)

	path := filepath.Join(dir, defs.GameConfigFile)
	if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrRewriteFailed, defs.GameConfigFile, err)
	}
	return nil
}

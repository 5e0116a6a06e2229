// Package scaffold implements the template instantiation core of gamemod:
// recursive template copy, build-descriptor and Kotlin source rewriting,
// package-path rename, GameConfig.kt emission, and rollback on partial
// failure. The filesystem ends in exactly one of two states after a call:
// no module directory, or a fully instantiated one.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrModuleExists indicates the target module directory already exists.
	// No filesystem changes are made in this case.
	ErrModuleExists = errors.New("scaffold: module already exists")

	// ErrTemplateMissing indicates the template root does not exist or is
	// not a directory. No filesystem changes are made in this case.
	ErrTemplateMissing = errors.New("scaffold: template directory not found")

	// ErrCopyFailed indicates the recursive template copy could not
	// complete; any partial copy is rolled back.
	ErrCopyFailed = errors.New("scaffold: template copy failed")

	// ErrRewriteFailed indicates a rewrite, rename or config emission step
	// failed; the entire module directory is rolled back.
	ErrRewriteFailed = errors.New("scaffold: placeholder rewrite failed")
)

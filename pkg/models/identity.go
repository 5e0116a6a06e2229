// Package models defines the shared data model for gamemod: the identity
// of a game module to be created and the catalog category enum.
package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category classifies a game module within the Roshni Games catalog.
type Category string

const (
	CategoryPuzzle   Category = "puzzle"
	CategoryWord     Category = "word"
	CategoryArcade   Category = "arcade"
	CategoryStrategy Category = "strategy"
	CategoryCasual   Category = "casual"
)

// Categories returns all valid categories in catalog order.
func Categories() []Category {
	return []Category{
		CategoryPuzzle,
		CategoryWord,
		CategoryArcade,
		CategoryStrategy,
		CategoryCasual,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPuzzle, CategoryWord, CategoryArcade, CategoryStrategy, CategoryCasual:
		return true
	}
	return false
}

// Sentinel errors for identity validation.
var (
	// ErrEmptyID indicates the module id is empty.
	ErrEmptyID = errors.New("models: module id must not be empty")

	// ErrInvalidID indicates the module id contains characters that are not
	// safe as a directory name and Kotlin identifier fragment.
	ErrInvalidID = errors.New("models: module id may contain only lowercase letters, digits, '-' and '_'")

	// ErrEmptyDisplayName indicates the display name is empty.
	ErrEmptyDisplayName = errors.New("models: display name must not be empty")

	// ErrInvalidCategory indicates an unrecognized category value.
	ErrInvalidCategory = errors.New("models: invalid category")
)

// Identity describes the module to be created. It is immutable once
// accepted by Validate: the id doubles as the module directory name and
// as the source of the generated type-name fragment.
type Identity struct {
	ID          string   // filesystem- and identifier-safe token, e.g. "puzzle-001"
	DisplayName string   // human-readable name, e.g. "Amazing Puzzle"
	Category    Category // catalog category
}

// ValidateID checks that id is a non-empty token of lowercase letters,
// digits, hyphens and underscores.
func ValidateID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

// ValidateDisplayName checks that name is not blank.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyDisplayName
	}
	return nil
}

// Validate checks all identity fields and normalizes the display name to
// NFC so the emitted Kotlin source is byte-stable across platforms that
// produce decomposed input (e.g. macOS terminals).
func (id *Identity) Validate() error {
	if err := ValidateID(id.ID); err != nil {
		return err
	}
	if err := ValidateDisplayName(id.DisplayName); err != nil {
		return err
	}
	if !id.Category.IsValid() {
		return fmt.Errorf("%w: %q (must be one of: %s)", ErrInvalidCategory, id.Category, categoryList())
	}
	id.DisplayName = norm.NFC.String(id.DisplayName)
	return nil
}

// categoryList renders the valid categories for error messages.
func categoryList() string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

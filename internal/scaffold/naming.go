package scaffold

import (
	"strings"
	"unicode"
)

// TypeName derives the PascalCase type-name fragment for a module id.
// The id is split on '-' and '_', the first rune of each non-empty segment
// is upper-cased, the remainder is left untouched, and the segments are
// concatenated without separators: "puzzle-001" becomes "Puzzle001",
// "word_match_pro" becomes "WordMatchPro".
//
// Existing modules were generated with exactly this rule; changing it
// would break type references from the app shell.
func TypeName(id string) string {
	var b strings.Builder
	for _, seg := range strings.FieldsFunc(id, isSeparator) {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_'
}

// Package deck locates a workspace's top-level model decks and performs
// the shallow per-deck pass that feeds the navigable catalog. The deep,
// fully scoped traversal lives in internal/extract.
package deck

import "strings"

// Record describes one discovered top-level model deck: its declared
// sections and the files it directly includes. Both lists are ordered
// sets (first occurrence wins, duplicates dropped).
type Record struct {
	DeckPath string   `json:"deckPath"`
	Sections []string `json:"sections"`
	Includes []string `json:"includes"`
}

// IsComment reports whether a trimmed deck line is a comment. Decks use
// SPICE-style "*" comments and Spectre-style "//" comments.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "*") || strings.HasPrefix(line, "//")
}

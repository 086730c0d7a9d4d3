// Package subject implements the locale-aware subject-prefix cleaning
// pipeline: tokenize the leading run of "word:" segments, classify each
// against the prefix catalog, collapse repeated reply/forward runs, and
// render the survivors in a single target language.
package subject

import "github.com/hazyhaar/prefixline/pkg/prefix"

// Token is one leading "word:" segment of a subject line, in scan order.
// Entry is nil for segments the catalog does not recognize.
type Token struct {
	Text  string
	Pos   int
	Entry *prefix.Entry
}

// Known reports whether the token matched a catalog alias.
func (t Token) Known() bool { return t.Entry != nil }

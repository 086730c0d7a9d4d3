package prefix

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold canonicalizes an alias for lookup: Unicode case folding plus accent
// stripping, so "Réf" and "REF" land on the same key. Lookup stays an exact
// whole-token match; folding never turns a substring into a hit.
func fold(s string) string {
	folded := cases.Fold().String(s)
	result, _, _ := transform.String(stripAccents, folded)
	return result
}

package subject

import (
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"golang.org/x/text/language"
)

// ResolveTargetLanguage decides which language the surviving prefixes are
// rendered in. With keepOriginal unset the reader's UI language wins,
// matched onto the closest catalog language. With keepOriginal set, the
// majority language among the known tokens wins — the language the
// correspondent is writing in, not the reader's — with ties broken by the
// left-most token whose language is among the leaders.
func ResolveTargetLanguage(reg *prefix.Registry, known []Token, ui language.Tag, keepOriginal bool) language.Tag {
	if !keepOriginal || len(known) == 0 {
		return reg.Match(ui)
	}

	counts := make(map[language.Tag]int, len(known))
	for _, t := range known {
		counts[t.Entry.Language]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	for _, t := range known {
		if counts[t.Entry.Language] == max {
			return t.Entry.Language
		}
	}
	return reg.Match(ui) // unreachable with non-empty known
}

package subject

import (
	"github.com/hazyhaar/prefixline/pkg/prefix"
	"golang.org/x/text/language"
)

// reduceRuns collapses every maximal run of consecutive known tokens sharing
// the same type into its left-most token. Type is the run key: a reply run
// collapses even when its tokens come from different languages. Unknown
// tokens never reach this function, so they cannot break a run.
func reduceRuns(known []Token) []Token {
	if len(known) == 0 {
		return known
	}
	out := known[:1:1]
	for _, t := range known[1:] {
		if t.Entry.Type != out[len(out)-1].Entry.Type {
			out = append(out, t)
		}
	}
	return out
}

// translate rewrites each surviving token to the canonical spelling for
// (target, type), regardless of the token's original alias or language.
// A language missing one form falls back to the English canonical, and as a
// last resort the original text is kept.
func translate(reg *prefix.Registry, known []Token, target language.Tag) []Token {
	out := make([]Token, len(known))
	for i, t := range known {
		out[i] = t
		if c, ok := reg.Canonical(target, t.Entry.Type); ok {
			out[i].Text = c
		} else if c, ok := reg.Canonical(language.English, t.Entry.Type); ok {
			out[i].Text = c
		}
	}
	return out
}

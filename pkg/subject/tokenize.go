package subject

import "github.com/hazyhaar/prefixline/pkg/prefix"

// Tokenize splits the leading run of "word:" segments off a subject line.
// A segment is a maximal run of non-colon, non-whitespace characters
// immediately followed by a colon; whitespace after the colon belongs to the
// segment. The first stretch that does not fit that shape (including running
// out of input) ends the scan, and everything from there on is the title,
// returned verbatim.
func Tokenize(reg *prefix.Registry, s string) (tokens []Token, title string) {
	i := 0
	for pos := 0; ; pos++ {
		j := i
		for j < len(s) && s[j] != ':' && !isSpace(s[j]) {
			j++
		}
		if j == i || j >= len(s) || s[j] != ':' {
			return tokens, s[i:]
		}
		word := s[i:j]
		j++
		for j < len(s) && isSpace(s[j]) {
			j++
		}

		tok := Token{Text: word, Pos: pos}
		if e, ok := reg.Lookup(word); ok {
			tok.Entry = &e
		}
		tokens = append(tokens, tok)
		i = j
	}
}

// Subject lines are single header lines; space and tab are the only
// whitespace that can terminate a segment.
func isSpace(b byte) bool { return b == ' ' || b == '\t' }

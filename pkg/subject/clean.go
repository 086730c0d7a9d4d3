package subject

import (
	"strings"

	"github.com/hazyhaar/prefixline/pkg/prefix"
	"golang.org/x/text/language"
)

// Input is the subject argument at the pipeline boundary: either absent or
// a text value. Modeling absence explicitly keeps type checks out of the
// pipeline itself.
type Input struct {
	text string
	ok   bool
}

// Text wraps a subject string.
func Text(s string) Input { return Input{text: s, ok: true} }

// Empty is the absent-subject input; Clean maps it to "".
func Empty() Input { return Input{} }

// Options are the resolved policy inputs for one Clean call. The settings
// store and UI-language lookup live at the call boundary; once an Options
// value is built, Clean is a pure function.
type Options struct {
	// UILanguage is the reader's interface language, the fallback target.
	UILanguage language.Tag
	// TranslatePrefixes gates the whole pipeline; when false the input
	// passes through untouched.
	TranslatePrefixes bool
	// OnlyOnePrefix keeps just the left-most surviving known prefix.
	OnlyOnePrefix bool
	// KeepOriginalLanguage renders prefixes in the majority language of the
	// existing prefixes instead of the UI language.
	KeepOriginalLanguage bool
}

// Cleaner normalizes reply/forward prefix chains against a prefix registry.
type Cleaner struct {
	reg *prefix.Registry
}

func NewCleaner(reg *prefix.Registry) *Cleaner {
	return &Cleaner{reg: reg}
}

// Clean rewrites the leading prefix chain of a subject into a single,
// policy-consistent sequence in one target language, followed by any
// unrecognized leading segments and the untouched title.
//
// Subjects with no recognized prefix are returned byte-for-byte: when there
// is nothing to normalize, nothing is reformatted either.
func (c *Cleaner) Clean(in Input, opts Options) string {
	if !in.ok {
		return ""
	}
	raw := in.text
	if !opts.TranslatePrefixes {
		return raw
	}

	tokens, title := Tokenize(c.reg, raw)
	var known, unknown []Token
	for _, t := range tokens {
		if t.Known() {
			known = append(known, t)
		} else {
			unknown = append(unknown, t)
		}
	}
	if len(known) == 0 {
		return raw
	}

	target := ResolveTargetLanguage(c.reg, known, opts.UILanguage, opts.KeepOriginalLanguage)
	known = reduceRuns(known)
	known = translate(c.reg, known, target)
	if opts.OnlyOnePrefix {
		known = known[:1]
	}

	var b strings.Builder
	for _, t := range known {
		b.WriteString(t.Text)
		b.WriteString(": ")
	}
	for _, t := range unknown {
		b.WriteString(t.Text)
		b.WriteString(": ")
	}
	b.WriteString(title)
	return b.String()
}

package prefix

import "golang.org/x/text/language"

// Type distinguishes reply markers from forward markers.
type Type int

const (
	Reply Type = iota
	Forward
)

func (t Type) String() string {
	switch t {
	case Reply:
		return "reply"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Entry is one registered prefix alias: the spelling under which it was
// registered, the language it belongs to, and whether it marks a reply
// or a forward.
type Entry struct {
	Alias    string
	Language language.Tag
	Type     Type
}

// Form is the prefix shape for one (language, type) pair: the canonical
// spelling emitted on output plus any additional spellings recognized on
// input. The canonical spelling is itself always recognized.
type Form struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// Catalog is the complete prefix set for a single language.
type Catalog struct {
	Language language.Tag
	Reply    Form
	Forward  Form
}

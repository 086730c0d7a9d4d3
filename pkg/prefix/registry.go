package prefix

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Registry holds every known prefix alias across all languages and serves
// lookups for the cleaning pipeline. After Load it is read-only until the
// next Reload, so concurrent lookups need no coordination beyond the RWMutex
// guarding the swap.
type Registry struct {
	mu         sync.RWMutex
	byAlias    map[string]Entry
	canonicals map[canonKey]string
	langs      []language.Tag
	matcher    language.Matcher
	catalogDir string
}

type canonKey struct {
	lang language.Tag
	typ  Type
}

// NewRegistry creates an empty registry. catalogDir may be empty, in which
// case only the built-in catalogs are loaded.
func NewRegistry(catalogDir string) *Registry {
	return &Registry{catalogDir: catalogDir}
}

// Load builds the alias and canonical tables from the built-in catalogs plus
// any per-language YAML files in the catalog directory. A file whose language
// matches a built-in catalog replaces that catalog entirely.
func (r *Registry) Load() error {
	catalogs := builtin()

	if r.catalogDir != "" {
		entries, err := os.ReadDir(r.catalogDir)
		if err != nil {
			return fmt.Errorf("read catalog dir %s: %w", r.catalogDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
				continue
			}
			c, err := LoadCatalogFile(filepath.Join(r.catalogDir, entry.Name()))
			if err != nil {
				return fmt.Errorf("load catalog %s: %w", entry.Name(), err)
			}
			catalogs = mergeCatalog(catalogs, c)
		}
	}

	byAlias := make(map[string]Entry)
	canonicals := make(map[canonKey]string)
	langs := make([]language.Tag, 0, len(catalogs))
	var collisions int

	register := func(alias string, lang language.Tag, typ Type) {
		key := fold(alias)
		if key == "" {
			return
		}
		if prev, exists := byAlias[key]; exists {
			// Shared spellings across languages are expected (RE, SV);
			// the first registration owns the alias.
			if prev.Language != lang || prev.Type != typ {
				collisions++
			}
			return
		}
		byAlias[key] = Entry{Alias: alias, Language: lang, Type: typ}
	}

	for _, c := range catalogs {
		langs = append(langs, c.Language)
		canonicals[canonKey{c.Language, Reply}] = c.Reply.Canonical
		canonicals[canonKey{c.Language, Forward}] = c.Forward.Canonical

		register(c.Reply.Canonical, c.Language, Reply)
		for _, a := range c.Reply.Aliases {
			register(a, c.Language, Reply)
		}
		register(c.Forward.Canonical, c.Language, Forward)
		for _, a := range c.Forward.Aliases {
			register(a, c.Language, Forward)
		}
	}

	if collisions > 0 {
		slog.Warn("alias collisions across languages, first registration kept", "collisions", collisions)
	}

	r.mu.Lock()
	r.byAlias = byAlias
	r.canonicals = canonicals
	r.langs = langs
	r.matcher = language.NewMatcher(langs)
	r.mu.Unlock()
	return nil
}

// Reload re-reads the catalog directory (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

func mergeCatalog(catalogs []Catalog, c Catalog) []Catalog {
	for i := range catalogs {
		if catalogs[i].Language == c.Language {
			catalogs[i] = c
			return catalogs
		}
	}
	return append(catalogs, c)
}

// Lookup resolves a single token against all registered aliases.
// Matching is case-insensitive and exact: the whole token must equal an
// alias, never just start with one.
func (r *Registry) Lookup(token string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byAlias[fold(token)]
	return e, ok
}

// Canonical returns the display spelling for a (language, type) pair.
func (r *Registry) Canonical(lang language.Tag, typ Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.canonicals[canonKey{lang, typ}]
	return s, ok
}

// Match maps an arbitrary BCP 47 tag (e.g. en-US, de-AT) onto the closest
// catalog language. Unrecognized tags fall back to the first catalog
// language, which is English in the built-in set.
func (r *Registry) Match(tag language.Tag) language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, idx, _ := r.matcher.Match(tag)
	return r.langs[idx]
}

// LangInfo is the public metadata for one catalog language.
type LangInfo struct {
	Language string `json:"language"`
	Reply    string `json:"reply"`
	Forward  string `json:"forward"`
	Aliases  int    `json:"aliases"`
}

// Languages returns metadata for all catalog languages, sorted by tag.
func (r *Registry) Languages() []LangInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make(map[language.Tag]int)
	for _, e := range r.byAlias {
		owned[e.Language]++
	}

	infos := make([]LangInfo, 0, len(r.langs))
	for _, lang := range r.langs {
		infos = append(infos, LangInfo{
			Language: lang.String(),
			Reply:    r.canonicals[canonKey{lang, Reply}],
			Forward:  r.canonicals[canonKey{lang, Forward}],
			Aliases:  owned[lang],
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Language < infos[j].Language })
	return infos
}

// LanguageCount returns the number of loaded catalog languages.
func (r *Registry) LanguageCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.langs)
}

// AliasCount returns the total number of registered aliases.
func (r *Registry) AliasCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byAlias)
}

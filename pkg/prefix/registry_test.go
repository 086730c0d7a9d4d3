package prefix

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func loadBuiltin(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry("")
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}

func TestRegistryLoadBuiltin(t *testing.T) {
	reg := loadBuiltin(t)

	if reg.LanguageCount() == 0 {
		t.Fatal("LanguageCount = 0, want > 0")
	}
	if reg.AliasCount() == 0 {
		t.Fatal("AliasCount = 0, want > 0")
	}
}

func TestLookup(t *testing.T) {
	reg := loadBuiltin(t)

	tests := []struct {
		token string
		lang  language.Tag
		typ   Type
	}{
		{"RE", language.English, Reply},
		{"re", language.English, Reply},
		{"Re", language.English, Reply},
		{"FW", language.English, Forward},
		{"FWD", language.English, Forward},
		{"Fwd", language.English, Forward},
		{"AW", language.German, Reply},
		{"WG", language.German, Forward},
		{"TR", language.French, Forward},
		{"RV", language.Spanish, Forward},
		{"Antw", language.Dutch, Reply},
		{"ODP", language.Polish, Reply},
	}
	for _, tt := range tests {
		e, ok := reg.Lookup(tt.token)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.token)
			continue
		}
		if e.Language != tt.lang || e.Type != tt.typ {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", tt.token, e.Language, e.Type, tt.lang, tt.typ)
		}
	}
}

func TestLookupWholeTokenOnly(t *testing.T) {
	reg := loadBuiltin(t)
	for _, token := range []string{"XRE", "REX", "F", "FWDX", "", "R E"} {
		if _, ok := reg.Lookup(token); ok {
			t.Errorf("Lookup(%q): matched, want miss", token)
		}
	}
}

func TestSharedAliasOwnership(t *testing.T) {
	reg := loadBuiltin(t)

	// RE is spelled identically in English, French and Spanish; the first
	// registered language owns the lookup.
	e, ok := reg.Lookup("RE")
	if !ok || e.Language != language.English {
		t.Errorf("Lookup(RE) = (%v, %v), want English", e.Language, ok)
	}

	// SV is shared by Swedish and Danish.
	e, ok = reg.Lookup("SV")
	if !ok || e.Language != language.Swedish {
		t.Errorf("Lookup(SV) = (%v, %v), want Swedish", e.Language, ok)
	}
}

func TestCanonical(t *testing.T) {
	reg := loadBuiltin(t)

	tests := []struct {
		lang language.Tag
		typ  Type
		want string
	}{
		{language.English, Reply, "RE"},
		{language.English, Forward, "FW"}, // FW, not FWD
		{language.German, Reply, "AW"},
		{language.German, Forward, "WG"},
		{language.Danish, Reply, "SV"}, // shared spelling, own canonical
		{language.French, Forward, "TR"},
	}
	for _, tt := range tests {
		got, ok := reg.Canonical(tt.lang, tt.typ)
		if !ok || got != tt.want {
			t.Errorf("Canonical(%v, %v) = (%q, %v), want %q", tt.lang, tt.typ, got, ok, tt.want)
		}
	}

	if _, ok := reg.Canonical(language.Make("fi"), Reply); ok {
		t.Error("Canonical(fi, Reply): found, want miss")
	}
}

func TestMatch(t *testing.T) {
	reg := loadBuiltin(t)

	tests := []struct {
		tag  language.Tag
		want language.Tag
	}{
		{language.Make("en-US"), language.English},
		{language.Make("de-AT"), language.German},
		{language.Make("fr-CA"), language.French},
		{language.Make("ja"), language.English}, // no catalog match falls back to first
	}
	for _, tt := range tests {
		if got := reg.Match(tt.tag); got != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCatalogDirExtendsBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "fi.yaml", `language: fi
reply:
  canonical: Vast
forward:
  canonical: VL
`)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	e, ok := reg.Lookup("vast")
	if !ok || e.Language != language.Finnish || e.Type != Reply {
		t.Errorf("Lookup(vast) = (%v, %v), want Finnish reply", e, ok)
	}
	if got, ok := reg.Canonical(language.Finnish, Forward); !ok || got != "VL" {
		t.Errorf("Canonical(fi, Forward) = (%q, %v), want VL", got, ok)
	}
}

func TestCatalogDirOverridesLanguage(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "de.yaml", `language: de
reply:
  canonical: AW
  aliases: [Antwort]
forward:
  canonical: WTR
`)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, _ := reg.Canonical(language.German, Forward); got != "WTR" {
		t.Errorf("Canonical(de, Forward) = %q, want WTR", got)
	}
	if e, ok := reg.Lookup("Antwort"); !ok || e.Language != language.German {
		t.Errorf("Lookup(Antwort) = (%v, %v), want German", e, ok)
	}
	// The replaced catalog's old forward spelling is gone.
	if _, ok := reg.Lookup("WG"); ok {
		t.Error("Lookup(WG): matched after override, want miss")
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := reg.LanguageCount()

	writeCatalog(t, dir, "fi.yaml", `language: fi
reply:
  canonical: Vast
forward:
  canonical: VL
`)
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.LanguageCount() != before+1 {
		t.Errorf("LanguageCount after reload = %d, want %d", reg.LanguageCount(), before+1)
	}
}

func TestLoadCatalogFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name, content string
	}{
		{"missing-language.yaml", "reply:\n  canonical: RE\nforward:\n  canonical: FW\n"},
		{"bad-tag.yaml", "language: \"not a tag!\"\nreply:\n  canonical: RE\nforward:\n  canonical: FW\n"},
		{"missing-canonical.yaml", "language: fi\nreply:\n  canonical: Vast\nforward: {}\n"},
		{"not-yaml.yaml", ": : :\n"},
	}
	for _, tt := range tests {
		writeCatalog(t, dir, tt.name, tt.content)
		if _, err := LoadCatalogFile(filepath.Join(dir, tt.name)); err == nil {
			t.Errorf("LoadCatalogFile(%s): no error", tt.name)
		}
	}
}

func TestLanguages(t *testing.T) {
	reg := loadBuiltin(t)

	infos := reg.Languages()
	if len(infos) != reg.LanguageCount() {
		t.Fatalf("Languages() = %d entries, want %d", len(infos), reg.LanguageCount())
	}
	var en LangInfo
	for _, info := range infos {
		if info.Language == "en" {
			en = info
		}
	}
	if en.Reply != "RE" || en.Forward != "FW" {
		t.Errorf("en canonicals = (%q, %q), want (RE, FW)", en.Reply, en.Forward)
	}
	if en.Aliases < 2 {
		t.Errorf("en aliases = %d, want >= 2", en.Aliases)
	}
}

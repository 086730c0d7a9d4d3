package prefix

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape of a per-language catalog.
//
//	language: de
//	reply:
//	  canonical: AW
//	  aliases: [Antwort]
//	forward:
//	  canonical: WG
//	  aliases: [Weiterleitung]
type catalogFile struct {
	Language string `yaml:"language"`
	Reply    Form   `yaml:"reply"`
	Forward  Form   `yaml:"forward"`
}

// LoadCatalogFile reads and validates one per-language catalog YAML file.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if cf.Language == "" {
		return Catalog{}, fmt.Errorf("catalog %s: missing language", path)
	}
	tag, err := language.Parse(cf.Language)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: bad language %q: %w", path, cf.Language, err)
	}
	if cf.Reply.Canonical == "" || cf.Forward.Canonical == "" {
		return Catalog{}, fmt.Errorf("catalog %s: reply and forward canonicals are required", path)
	}
	return Catalog{Language: tag, Reply: cf.Reply, Forward: cf.Forward}, nil
}

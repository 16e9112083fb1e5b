package schema

import (
	"fmt"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a schema document from a YAML file. The loaded document
// replaces the built-in one; it is still validated by NewCatalog.
func Load(path string) (Document, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return Document{}, fmt.Errorf("load schema document %s: %w", path, err)
	}

	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal schema document %s: %w", path, err)
	}

	return doc, nil
}

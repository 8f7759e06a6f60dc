package deck

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

// DefaultTemplate is the template built when no source is configured.
const DefaultTemplate = "default"

// TemplatesFS holds the built-in deck templates.
//
//go:embed templates/*.yaml
var TemplatesFS embed.FS

// Template parses the built-in template with the given name.
func Template(name string) (*Deck, error) {
	fileName := path.Join("templates", name+".yaml")
	content, err := TemplatesFS.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not read embedded template %s: %w", fileName, err)
	}
	return ParseYAML(content)
}

// Default returns the default built-in deck.
func Default() (*Deck, error) {
	return Template(DefaultTemplate)
}

// Templates lists the names of the built-in templates, sorted.
func Templates() ([]string, error) {
	entries, err := TemplatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a deck from a YAML file or a Markdown outline, chosen by the
// file extension.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var d *Deck
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		d = ParseMarkdown(data)
	case ".yaml", ".yml":
		d, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported deck source %s: want .yaml, .yml, .md or .markdown", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// ParseYAML decodes a deck and validates its slide kinds.
func ParseYAML(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

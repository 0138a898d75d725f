package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseJSON builds a catalog from a JSON document shaped as
// {"en": {"min": "...", "default": "..."}, "de": {...}}.
func ParseJSON(data []byte, opts ...Option) (*Catalog, error) {
	var messages map[string]map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	return NewCatalog(messages, opts...)
}

// ParseYAML builds a catalog from the equivalent YAML document.
func ParseYAML(data []byte, opts ...Option) (*Catalog, error) {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	return NewCatalog(messages, opts...)
}

// LoadFile reads a catalog document, picking the parser by file extension.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data, opts...)
	case ".yaml", ".yml":
		return ParseYAML(data, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
	}
}

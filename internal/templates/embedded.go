package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*
var builtin embed.FS

// DefaultName is the built-in template used when none is configured.
const DefaultName = "default"

// EmbeddedLoader loads the built-in templates.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load returns the built-in template called name.
func (e *EmbeddedLoader) Load(name string) (*Template, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(builtin, "builtin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	for _, entry := range entries {
		file := entry.Name()
		if stem(file) != name {
			continue
		}
		data, err := builtin.ReadFile(path.Join("builtin", file))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
		}
		return &Template{Name: name, Format: Detect(file, data), Data: data}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}

// Names lists the built-in template names.
func (e *EmbeddedLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(builtin, "builtin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, stem(entry.Name()))
	}
	sort.Strings(names)
	return names, nil
}

// stem returns a file name without its extension.
func stem(file string) string {
	if i := strings.LastIndex(file, "."); i > 0 {
		return file[:i]
	}
	return file
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)

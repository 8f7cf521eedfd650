package templates

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is a located report template.
type Template struct {
	Name   string
	Format Format
	Path   string // empty for built-in templates
	Data   []byte
}

// Loader looks templates up by name.
type Loader interface {
	// Load returns the template called name.
	// Returns ErrTemplateNotFound if it does not exist.
	// Returns ErrInvalidTemplateName if the name contains invalid characters.
	Load(name string) (*Template, error)

	// Names lists the available template names, sorted.
	Names() ([]string, error)
}

// Open loads a template from a file path.
func Open(path string) (*Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided template path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	name := filepath.Base(path)
	return &Template{
		Name:   name[:len(name)-len(filepath.Ext(name))],
		Format: Detect(path, data),
		Path:   path,
		Data:   data,
	}, nil
}

package templates

import (
	"errors"
	"slices"
	"sort"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Store combines a custom template directory with the built-in templates.
// Custom templates shadow built-ins of the same name.
type Store struct {
	custom   Loader // nil if no directory configured
	embedded Loader
}

// NewStore creates a Store. An empty dir uses only built-in templates.
func NewStore(dir string) (*Store, error) {
	s := &Store{embedded: NewEmbeddedLoader()}
	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		s.custom = fsLoader
	}
	return s, nil
}

// Resolve loads a template by name, or by path when nameOrPath contains a
// path separator.
func (s *Store) Resolve(nameOrPath string) (*Template, error) {
	if fileutil.IsFilePath(nameOrPath) {
		return Open(nameOrPath)
	}
	return s.Load(nameOrPath)
}

// Load returns the named template, trying the custom directory first.
func (s *Store) Load(name string) (*Template, error) {
	if s.custom == nil {
		return s.embedded.Load(name)
	}
	t, err := s.custom.Load(name)
	if err == nil {
		return t, nil
	}
	// Only fall back when the name is free, not on validation or I/O errors.
	if !errors.Is(err, ErrTemplateNotFound) {
		return nil, err
	}
	return s.embedded.Load(name)
}

// Names lists every available template name once.
func (s *Store) Names() ([]string, error) {
	names, err := s.embedded.Names()
	if err != nil {
		return nil, err
	}
	if s.custom != nil {
		custom, err := s.custom.Names()
		if err != nil {
			return nil, err
		}
		names = append(names, custom...)
	}

	sort.Strings(names)
	return slices.Compact(names), nil
}

// HasCustomDir reports whether a template directory is configured.
func (s *Store) HasCustomDir() bool {
	return s.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Store)(nil)

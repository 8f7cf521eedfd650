package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extPreference orders candidates when several files share a name.
var extPreference = []string{".docx", ".odt", ".html", ".pdf"}

// FilesystemLoader loads templates from a directory.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given directory.
// Returns ErrInvalidBasePath if the path is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Dir returns the absolute template directory.
func (f *FilesystemLoader) Dir() string {
	return f.basePath
}

// Load returns {basePath}/{name}.{ext}, preferring DOCX when several
// extensions exist.
func (f *FilesystemLoader) Load(name string) (*Template, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	candidates, err := f.candidates(name)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	filePath := candidates[0]
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return &Template{Name: name, Format: Detect(filePath, data), Path: filePath, Data: data}, nil
}

// candidates returns regular files named name.* ordered by extPreference.
func (f *FilesystemLoader) candidates(name string) ([]string, error) {
	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || stem(e.Name()) != name {
			continue
		}
		out = append(out, filepath.Join(f.basePath, e.Name()))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i]) < rank(out[j])
	})
	return out, nil
}

func rank(path string) int {
	ext := strings.ToLower(filepath.Ext(path))
	for i, e := range extPreference {
		if e == ext {
			return i
		}
	}
	return len(extPreference)
}

// Names lists the template names in the directory. Hidden files are skipped.
func (f *FilesystemLoader) Names() ([]string, error) {
	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		n := stem(e.Name())
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

// verifyPathContainment ensures the resolved file path is within basePath,
// following symlinks.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)

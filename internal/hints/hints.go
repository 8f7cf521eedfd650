// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// MediaRootEnv names the environment variable holding the media root.
const MediaRootEnv = "MD2DOCX_MEDIA_ROOT"

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForImageResolution returns hints for images that could not be read.
// Suggests setting the media root and, in containers, mounting it.
func ForImageResolution() string {
	var hints []string

	if os.Getenv(MediaRootEnv) == "" {
		hints = append(hints, "set --media-root or "+MediaRootEnv+" to the directory holding uploaded_files/")
	}
	if IsInContainer() {
		hints = append(hints, "mount the media directory into the container")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2docx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound returns hints listing the available templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnsupportedFormat returns a hint for templates that are not DOCX.
func ForUnsupportedFormat() string {
	return format("only .docx templates can be rendered")
}

// ForInvalidData returns a hint for report data failing validation.
func ForInvalidData() string {
	return format("report data needs a non-empty title; findings need a title")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

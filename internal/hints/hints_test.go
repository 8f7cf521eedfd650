package hints

// Notes:
// - ForImageResolution tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func TestForImageResolution_NoMediaRoot(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv(MediaRootEnv, "")

	hint := ForImageResolution()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, MediaRootEnv) {
		t.Error("expected media root suggestion")
	}
	if strings.Contains(hint, "container") {
		t.Error("unexpected container suggestion outside a container")
	}
}

func TestForImageResolution_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv(MediaRootEnv, "/srv/media")

	hint := ForImageResolution()

	if strings.Contains(hint, MediaRootEnv) {
		t.Error("unexpected media root suggestion when already set")
	}
	if !strings.Contains(hint, "mount the media directory") {
		t.Errorf("expected container suggestion, got %q", hint)
	}
}

func TestForImageResolution_NothingToSuggest(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv(MediaRootEnv, "/srv/media")

	if hint := ForImageResolution(); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"work.yaml", "/home/u/.config/go-md2docx/work.yaml"},
			want:     "or create /home/u/.config/go-md2docx/work.yaml",
		},
		{
			name:     "flag only without user path",
			searched: []string{"work.yaml"},
			want:     "use --config /path/to/file.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForConfigNotFound(tt.searched); !strings.Contains(got, tt.want) {
				t.Errorf("ForConfigNotFound() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if got := ForTemplateNotFound(nil); got != "" {
		t.Errorf("ForTemplateNotFound(nil) = %q, want empty", got)
	}
	got := ForTemplateNotFound([]string{"default", "pentest"})
	if got != "\n  hint: available: default, pentest" {
		t.Errorf("ForTemplateNotFound() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"output":      ForOutputDirectory(),
		"format":      ForUnsupportedFormat(),
		"invalidData": ForInvalidData(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want hint prefix", name, hint)
		}
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}

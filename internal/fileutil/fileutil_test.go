package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestSafeFilename - Report title to file name
// ---------------------------------------------------------------------------

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain title", input: "Q1 Pentest", want: "Q1 Pentest"},
		{name: "separators replaced", input: "Acme/Web\\App", want: "Acme_Web_App"},
		{name: "reserved characters replaced", input: `a:b*c?"d"<e>|f`, want: "a_b_c__d__e__f"},
		{name: "control characters replaced", input: "a\tb\nc", want: "a_b_c"},
		{name: "surrounding dots and spaces trimmed", input: "  ..report.  ", want: "report"},
		{name: "unicode kept", input: "Rapport d'audit été", want: "Rapport d'audit été"},
		{name: "empty", input: "   ", wantErr: fileutil.ErrEmptyName},
		{name: "only dots", input: "..", wantErr: fileutil.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.SafeFilename(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SafeFilename(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeFilename(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSafeFilename_Truncates(t *testing.T) {
	t.Parallel()

	got, err := fileutil.SafeFilename(strings.Repeat("é", fileutil.MaxFilenameLength+10))
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(got)); n != fileutil.MaxFilenameLength {
		t.Errorf("length = %d runes, want %d", n, fileutil.MaxFilenameLength)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic output writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")

	if err := fileutil.WriteFileAtomic(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "report.docx")
	if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o600); err == nil {
		t.Error("expected error for missing directory")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "nope"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "pentest", want: false},
		{input: "my-template", want: false},
		{input: "./custom.docx", want: true},
		{input: "/abs/report.docx", want: true},
		{input: `C:\templates\a.docx`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

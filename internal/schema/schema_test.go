package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Validate(t *testing.T) {
	t.Parallel()

	v, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	tests := []struct {
		name    string
		doc     string
		wantErr bool
		wantMsg string
	}{
		{name: "title only", doc: `{"title": "Q1 pentest"}`},
		{
			name: "full finding",
			doc: `{"title": "Q1", "findings": [{"title": "XSS", "severity": "High", "description": null,
				"endpoint_status": [{"mitigated": false, "endpoint": {"host": "example.com", "port": 443}}],
				"files": [{"title": "main", "path": "a.png"}]}]}`,
		},
		{name: "missing title", doc: `{}`, wantErr: true, wantMsg: "title"},
		{name: "empty title", doc: `{"title": ""}`, wantErr: true},
		{name: "findings not a list", doc: `{"title": "x", "findings": {}}`, wantErr: true, wantMsg: "findings"},
		{name: "port out of range", doc: `{"title": "x", "findings": [{"title": "a", "endpoint_status": [{"endpoint": {"host": "h", "port": 70000}}]}]}`, wantErr: true},
		{name: "file without path", doc: `{"title": "x", "findings": [{"title": "a", "files": [{"title": "shot"}]}]}`, wantErr: true, wantMsg: "path"},
		{name: "not JSON", doc: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate([]byte(tt.doc))
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidData) {
				t.Fatalf("Validate() error = %v, want ErrInvalidData", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Compile([]byte(`{"type": 12}`)); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Compile() error = %v, want ErrInvalidSchema", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.json")
	if err := os.WriteFile(path, []byte(`{"type": "object", "required": ["client"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := v.Validate([]byte(`{"title": "x"}`)); !errors.Is(err, ErrInvalidData) {
		t.Errorf("Validate() error = %v, want ErrInvalidData", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Load(missing) error = %v, want ErrInvalidSchema", err)
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and mock renderer
// ---------------------------------------------------------------------------

var testNow = time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

// testEnv is an Environment writing to buffers with a fixed clock.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return testNow },
			Stdout: stdout,
			Stderr: stderr,
			Stdin:  strings.NewReader(""),
			Getenv: func(k string) string { return vars[k] },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// mockRenderer records calls and answers with a fixed result per title.
type mockRenderer struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]*md2docx.Failure
	errs     map[string]error
}

func (m *mockRenderer) Render(_ context.Context, _ md2docx.Template, data map[string]any) (*md2docx.Result, error) {
	title, _ := data["title"].(string)

	m.mu.Lock()
	m.calls = append(m.calls, title)
	m.mu.Unlock()

	if err := m.errs[title]; err != nil {
		return nil, err
	}
	if f := m.failures[title]; f != nil {
		return &md2docx.Result{Failure: f}, nil
	}
	return &md2docx.Result{Filename: title + ".docx", Document: []byte("PK mock " + title)}, nil
}

// writeFiles creates files under a temp directory and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return dir
}

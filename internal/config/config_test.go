package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Templates.Default != "default" {
		t.Errorf("Templates.Default = %q, want %q", cfg.Templates.Default, "default")
	}
	if cfg.Templates.Dir != "" {
		t.Errorf("Templates.Dir = %q, want empty", cfg.Templates.Dir)
	}
	if cfg.Markdown.Highlight != "" {
		t.Errorf("Markdown.Highlight = %q, want empty", cfg.Markdown.Highlight)
	}
	if cfg.Date.Format != "YYYY-MM-DD" {
		t.Errorf("Date.Format = %q, want YYYY-MM-DD", cfg.Date.Format)
	}
	if cfg.Render.Workers != 0 {
		t.Errorf("Render.Workers = %d, want 0", cfg.Render.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error should mention field %q, got %v", tt.fieldName, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "default is valid",
			modify: func(c *Config) {},
		},
		{
			name:   "empty date format is valid",
			modify: func(c *Config) { c.Date.Format = "" },
		},
		{
			name:   "date preset is valid",
			modify: func(c *Config) { c.Date.Format = "long" },
		},
		{
			name:    "unclosed date bracket",
			modify:  func(c *Config) { c.Date.Format = "[Week of MMM" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "date format too long",
			modify:  func(c *Config) { c.Date.Format = strings.Repeat("Y", 51) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "template name with separator",
			modify:  func(c *Config) { c.Templates.Default = "../evil" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "template name too long",
			modify:  func(c *Config) { c.Templates.Default = strings.Repeat("a", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "media root too long",
			modify:  func(c *Config) { c.Media.Root = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "highlight style too long",
			modify:  func(c *Config) { c.Markdown.Highlight = strings.Repeat("a", MaxStyleNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Render.Workers = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			modify:  func(c *Config) { c.Render.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "max workers is valid",
			modify: func(c *Config) { c.Render.Workers = MaxWorkers },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `media:
  root: "/srv/media"
templates:
  dir: "/srv/templates"
markdown:
  highlight: "monokai"
date:
  format: "european"
render:
  workers: 4
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Media.Root != "/srv/media" {
			t.Errorf("Media.Root = %q, want %q", cfg.Media.Root, "/srv/media")
		}
		if cfg.Templates.Dir != "/srv/templates" {
			t.Errorf("Templates.Dir = %q, want %q", cfg.Templates.Dir, "/srv/templates")
		}
		if cfg.Templates.Default != "default" {
			t.Errorf("Templates.Default = %q, want default kept", cfg.Templates.Default)
		}
		if cfg.Markdown.Highlight != "monokai" {
			t.Errorf("Markdown.Highlight = %q, want %q", cfg.Markdown.Highlight, "monokai")
		}
		if cfg.Date.Format != "european" {
			t.Errorf("Date.Format = %q, want %q", cfg.Date.Format, "european")
		}
		if cfg.Render.Workers != 4 {
			t.Errorf("Render.Workers = %d, want 4", cfg.Render.Workers)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		if err := os.WriteFile(configPath, []byte("css:\n  style: x\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid yaml returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		if err := os.WriteFile(configPath, []byte("media: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		if err := os.WriteFile(configPath, []byte("render:\n  workers: -3\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yaml")
		if err := os.WriteFile(configPath, []byte("templates:\n  default: fromname\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Templates.Default != "fromname" {
			t.Errorf("Templates.Default = %q, want %q", cfg.Templates.Default, "fromname")
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yml")
		if err := os.WriteFile(configPath, []byte("templates:\n  default: fromyml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Templates.Default != "fromyml" {
			t.Errorf("Templates.Default = %q, want %q", cfg.Templates.Default, "fromyml")
		}
	})

	t.Run("unknown config name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nosuchconfig")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nosuchconfig.yaml") || !strings.Contains(err.Error(), "nosuchconfig.yml") {
			t.Errorf("error should list tried paths, got %v", err)
		}
	})
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MD2DOCX_CONFIG: config file path
	MediaRoot    string // MD2DOCX_MEDIA_ROOT: directory holding uploaded_files/
	TemplatesDir string // MD2DOCX_TEMPLATES_DIR: custom template directory
	Template     string // MD2DOCX_TEMPLATE: default template name
	OutputDir    string // MD2DOCX_OUTPUT_DIR: default output directory
	Highlight    string // MD2DOCX_HIGHLIGHT: chroma style
	Workers      int    // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":        true,
	hints.MediaRootEnv:      true,
	"MD2DOCX_TEMPLATES_DIR": true,
	"MD2DOCX_TEMPLATE":      true,
	"MD2DOCX_OUTPUT_DIR":    true,
	"MD2DOCX_HIGHLIGHT":     true,
	"MD2DOCX_WORKERS":       true,
}

// loadEnvConfig reads configuration through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("MD2DOCX_CONFIG"),
		MediaRoot:    getenv(hints.MediaRootEnv),
		TemplatesDir: getenv("MD2DOCX_TEMPLATES_DIR"),
		Template:     getenv("MD2DOCX_TEMPLATE"),
		OutputDir:    getenv("MD2DOCX_OUTPUT_DIR"),
		Highlight:    getenv("MD2DOCX_HIGHLIGHT"),
	}

	if workers := getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_MEDIA instead of MD2DOCX_MEDIA_ROOT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.MediaRoot != "" && cfg.Media.Root == "" {
		cfg.Media.Root = env.MediaRoot
	}
	if env.TemplatesDir != "" && cfg.Templates.Dir == "" {
		cfg.Templates.Dir = env.TemplatesDir
	}
	if env.Template != "" && (cfg.Templates.Default == "" || cfg.Templates.Default == config.DefaultConfig().Templates.Default) {
		cfg.Templates.Default = env.Template
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Highlight != "" && cfg.Markdown.Highlight == "" {
		cfg.Markdown.Highlight = env.Highlight
	}
	if env.Workers > 0 && cfg.Render.Workers == 0 {
		cfg.Render.Workers = env.Workers
	}
}

// loadSettings loads the config file named by the flag or MD2DOCX_CONFIG and
// applies environment overrides.
func loadSettings(flags *commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeMarkdownFlags overrides config values with explicitly set markdown flags.
func mergeMarkdownFlags(f *markdownFlags, cfg *config.Config) {
	if f.mediaRoot != "" {
		cfg.Media.Root = f.mediaRoot
	}
	if f.highlight != "" {
		cfg.Markdown.Highlight = f.highlight
	}
}

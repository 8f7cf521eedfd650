package main

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/templates"
)

// runTemplates lists the templates render can use by name.
func runTemplates(args []string, env *Environment) error {
	flags, _, err := parseTemplatesFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	if flags.templatesDir != "" {
		cfg.Templates.Dir = flags.templatesDir
	}

	store, err := templates.NewStore(cfg.Templates.Dir)
	if err != nil {
		return err
	}
	names, err := store.Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		if name == cfg.Templates.Default {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	if flags.common.verbose && store.HasCustomDir() {
		fmt.Fprintf(env.Stderr, "Template directory: %s\n", cfg.Templates.Dir)
	}
	return nil
}

package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/markup"
	"github.com/alnah/go-md2docx/internal/schema"
	"github.com/alnah/go-md2docx/internal/templates"
)

// Exit codes for md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // All reports rendered
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, data or template name
	ExitIO       = 3 // File not found, permission denied, unreadable image
	ExitTemplate = 4 // Template could not be expanded
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Template errors (exit 4)
	if errors.Is(err, ErrReportFailed) ||
		errors.Is(err, md2docx.ErrUnsupportedFormat) ||
		errors.Is(err, md2docx.ErrTemplateOpen) {
		return ExitTemplate
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadData) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteReport) ||
		errors.Is(err, md2docx.ErrImageResolution) ||
		errors.Is(err, templates.ErrTemplateRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2docx.ErrInvalidData) ||
		errors.Is(err, md2docx.ErrMissingTitle) ||
		errors.Is(err, templates.ErrTemplateNotFound) ||
		errors.Is(err, templates.ErrInvalidTemplateName) ||
		errors.Is(err, templates.ErrInvalidBasePath) ||
		errors.Is(err, templates.ErrPathTraversal) ||
		errors.Is(err, schema.ErrInvalidSchema) ||
		errors.Is(err, markup.ErrUnknownStyle) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidRunsFormat) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrDuplicateOutput) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}

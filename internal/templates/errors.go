package templates

import "errors"

// Sentinel errors for template lookup.
var (
	// ErrTemplateNotFound indicates no template with the requested name exists.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplateName indicates the name contains path separators,
	// dots or is empty.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrInvalidBasePath indicates the template directory is unusable.
	ErrInvalidBasePath = errors.New("invalid template directory")

	// ErrTemplateRead indicates an I/O error while reading a template.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)

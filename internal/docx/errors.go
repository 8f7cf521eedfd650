package docx

import "errors"

// Sentinel errors for DOCX template operations.
var (
	ErrInvalidPackage  = errors.New("invalid DOCX package")
	ErrMissingPart     = errors.New("DOCX part not found")
	ErrTemplateSyntax  = errors.New("template syntax error")
	ErrTemplateExec    = errors.New("template execution failed")
	ErrMalformedOutput = errors.New("rendered document is not well-formed XML")
	ErrEmbedImage      = errors.New("image embedding failed")
)

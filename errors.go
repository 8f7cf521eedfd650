package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// Sentinel errors for library operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported template format")
	ErrMissingTitle      = errors.New("report data has no title")
	ErrTemplateOpen      = errors.New("failed to open template")
	ErrUnsupportedValue  = errors.New("unsupported value")
	ErrInvalidData       = errors.New("invalid report data")

	// ErrImageResolution indicates an image reference could not be read or
	// decoded.
	ErrImageResolution = richtext.ErrImageResolution
)

// FailureKind classifies a template expansion failure.
type FailureKind int

const (
	// FailureUndefinedReference: the template used a variable or field that
	// does not exist.
	FailureUndefinedReference FailureKind = iota + 1
	// FailureSyntax: the template itself is malformed.
	FailureSyntax
	// FailureTemplate: any other expansion error.
	FailureTemplate
)

func (k FailureKind) String() string {
	switch k {
	case FailureUndefinedReference:
		return "undefined reference"
	case FailureSyntax:
		return "syntax error"
	case FailureTemplate:
		return "template error"
	}
	return "unknown"
}

// Failure describes a template expansion failure reported to the user.
type Failure struct {
	Kind   FailureKind
	Detail string
}

// Message returns the user-facing text.
func (f *Failure) Message() string {
	switch f.Kind {
	case FailureUndefinedReference:
		return "Failed to generate report: Template undefined variable: " + f.Detail
	case FailureSyntax:
		return "Failed to generate report: Syntax error: " + f.Detail
	default:
		return "Failed to generate report: Template error: " + f.Detail
	}
}

func (f *Failure) Error() string {
	return f.Message()
}

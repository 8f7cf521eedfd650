package markup

import "errors"

// Sentinel errors for markup parsing.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrHTMLParse      = errors.New("HTML parsing failed")
	ErrUnknownStyle   = errors.New("unknown highlighting style")
)

package templates

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format identifies a template document format.
type Format string

// Known template formats.
const (
	FormatDOCX    Format = "docx"
	FormatODT     Format = "odt"
	FormatHTML    Format = "html"
	FormatPDF     Format = "pdf"
	FormatUnknown Format = "unknown"
)

// mimeFormats maps sniffed content types to formats.
var mimeFormats = map[string]Format{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
	"application/vnd.oasis.opendocument.text":                                 FormatODT,
	"text/html":       FormatHTML,
	"application/pdf": FormatPDF,
}

// extFormats maps extensions to formats for containers mimetype reports only
// as generic ZIP archives.
var extFormats = map[string]Format{
	".docx": FormatDOCX,
	".odt":  FormatODT,
}

// Detect returns the format of a template named filename with content data.
func Detect(filename string, data []byte) Format {
	mtype := mimetype.Detect(data)
	for mime, f := range mimeFormats {
		if mtype.Is(mime) {
			return f
		}
	}
	if mtype.Is("application/zip") {
		if f, ok := extFormats[strings.ToLower(filepath.Ext(filename))]; ok {
			return f
		}
	}
	return FormatUnknown
}

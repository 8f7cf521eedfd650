package md2docx

import (
	"strconv"
	"strings"
)

// Format identifies a template document format.
type Format string

// FormatDOCX is the only format Render accepts.
const FormatDOCX Format = "docx"

// Template is a report template to render.
type Template struct {
	Name   string
	Format Format
	Path   string // read when Data is nil
	Data   []byte
}

// Result is the outcome of a render. Exactly one of Document and Failure is set.
type Result struct {
	Filename string
	Document []byte
	Failure  *Failure
}

// Finding is a reported vulnerability.
type Finding struct {
	ID             any              `json:"id,omitempty"`
	Title          string           `json:"title"`
	Severity       string           `json:"severity,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Mitigation     *string          `json:"mitigation,omitempty"`
	Impact         *string          `json:"impact,omitempty"`
	References     *string          `json:"references,omitempty"`
	EndpointStatus []EndpointStatus `json:"endpoint_status,omitempty"`
	Files          []File           `json:"files,omitempty"`
}

// EndpointStatus links a finding to an endpoint.
type EndpointStatus struct {
	Endpoint  Endpoint `json:"endpoint"`
	Mitigated bool     `json:"mitigated,omitempty"`
}

// Endpoint is a network location affected by a finding.
type Endpoint struct {
	Protocol string `json:"protocol,omitempty"`
	Host     string `json:"host"`
	Port     int    `json:"port,omitempty"`
	Path     string `json:"path,omitempty"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`
}

// String formats the endpoint as a URL, omitting absent parts.
func (e Endpoint) String() string {
	var b strings.Builder
	if e.Protocol != "" {
		b.WriteString(e.Protocol)
		b.WriteString("://")
	}
	b.WriteString(e.Host)
	if e.Port > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(e.Port))
	}
	if e.Path != "" {
		if !strings.HasPrefix(e.Path, "/") {
			b.WriteString("/")
		}
		b.WriteString(e.Path)
	}
	if e.Query != "" {
		b.WriteString("?")
		b.WriteString(e.Query)
	}
	if e.Fragment != "" {
		b.WriteString("#")
		b.WriteString(e.Fragment)
	}
	return b.String()
}

// File is a file attached to a finding. Relative paths are resolved against
// the media root.
type File struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// mainImageTitle marks the primary image, which get_finding_images skips.
const mainImageTitle = "main"

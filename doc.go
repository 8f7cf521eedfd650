// Package md2docx renders report templates stored as DOCX documents, with
// Markdown fields turned into styled Word runs.
//
// # Quick Start
//
//	r, err := md2docx.NewRenderer(md2docx.WithMediaRoot("/var/media"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := r.Render(ctx, md2docx.Template{
//	    Name:   "pentest",
//	    Format: md2docx.FormatDOCX,
//	    Path:   "pentest.docx",
//	}, data)
//	if err != nil {
//	    log.Fatal(err) // unsupported format, unreadable template, bad image
//	}
//	if res.Failure != nil {
//	    fmt.Println(res.Failure.Message()) // template expansion failed
//	    return
//	}
//	os.WriteFile(res.Filename, res.Document, 0o600)
//
// # Template Language
//
// Templates use text/template syntax inside Word text. Besides the usual
// {{ .field }} actions, {{r expr }} replaces the enclosing run with rich text,
// and {{p ... }} or {{tr ... }} place a control action in place of the
// enclosing paragraph or table row:
//
//	{{p range .findings }}
//	{{ .Title }}
//	{{r parse_markdown .Description }}
//	{{p range get_finding_images . }}{{r . }}{{p end }}
//	{{p end }}
//
// The following functions are available:
//
//	get_vulnerable_endpoints FINDING   endpoints not marked mitigated
//	get_finding_images FINDING         attached images except "main", 160mm wide
//	parse_markdown TEXT                styled runs, or nil for a nil input
//	is_richtext VALUE                  whether VALUE is a text run
//	format_date LAYOUT TIME            e.g. {{ .date | format_date "long" }}
//
// The render time is available as .date.
//
// # Failures
//
// Undefined references, template syntax errors and other expansion errors
// are reported in Result.Failure and produce no document. Image files that
// cannot be read or decoded abort the render with an error wrapping
// ErrImageResolution.
package md2docx

package md2docx

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/markup"
	"github.com/alnah/go-md2docx/internal/richtext"
)

// Renderer expands DOCX report templates.
// A Renderer is safe for concurrent use; each Render works on its own copy
// of the template.
type Renderer struct {
	cfg       rendererConfig
	parser    MarkdownParser
	highlight bool
	images    *richtext.ImageResolver
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			now:        time.Now,
			dateFormat: dateutil.DefaultDateFormat,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := dateutil.Validate(r.cfg.dateFormat); err != nil {
		return nil, err
	}

	if r.parser == nil {
		var popts []markup.Option
		if r.highlight {
			popts = append(popts, markup.WithHighlighting(r.cfg.highlightStyle))
		}
		p, err := markup.NewParser(popts...)
		if err != nil {
			return nil, err
		}
		r.parser = p
	}

	r.images = richtext.NewImageResolver(r.cfg.mediaRoot)
	return r, nil
}

// Render expands tpl with data and returns the document. Template expansion
// failures are returned in Result.Failure with a nil error. Errors are
// returned for unsupported formats, unreadable templates, missing titles,
// image resolution failures and cancellation.
func (r *Renderer) Render(ctx context.Context, tpl Template, data map[string]any) (*Result, error) {
	if tpl.Format != FormatDOCX {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tpl.Format)
	}
	filename, err := reportFilename(data)
	if err != nil {
		return nil, err
	}

	doc, err := openTemplate(tpl)
	if err != nil {
		return nil, err
	}

	env := make(map[string]any, len(data)+1)
	maps.Copy(env, data)
	env["date"] = r.cfg.now()

	walker := richtext.NewWalker(doc, r.images)
	if err := doc.Execute(env, r.funcs(ctx, walker)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, ErrImageResolution) {
			return nil, err
		}
		if f := classify(err); f != nil {
			return &Result{Failure: f}, nil
		}
		return nil, err
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return &Result{Filename: filename, Document: out}, nil
}

func openTemplate(tpl Template) (*docx.Template, error) {
	var (
		doc *docx.Template
		err error
	)
	if tpl.Data != nil {
		doc, err = docx.Parse(tpl.Data)
	} else {
		doc, err = docx.Open(tpl.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateOpen, tpl.Name, err)
	}
	return doc, nil
}

// reportFilename derives "<title>.docx" from the data's title.
func reportFilename(data map[string]any) (string, error) {
	title, ok := data["title"]
	if !ok || title == nil {
		return "", ErrMissingTitle
	}
	name, err := fileutil.SafeFilename(fmt.Sprint(title))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTitle, err)
	}
	return name + ".docx", nil
}

// undefinedMarkers identify text/template execution errors caused by a
// missing variable, key or field.
var undefinedMarkers = []string{
	"map has no entry for key",
	"can't evaluate field",
	"nil pointer evaluating",
	"undefined variable",
}

// classify maps a template expansion error to a Failure, or returns nil for
// errors that are not expansion failures.
func classify(err error) *Failure {
	switch {
	case errors.Is(err, docx.ErrTemplateSyntax):
		d := detail(err, docx.ErrTemplateSyntax)
		if strings.Contains(d, "undefined variable") {
			return &Failure{Kind: FailureUndefinedReference, Detail: d}
		}
		return &Failure{Kind: FailureSyntax, Detail: d}
	case errors.Is(err, docx.ErrTemplateExec):
		d := detail(err, docx.ErrTemplateExec)
		for _, m := range undefinedMarkers {
			if strings.Contains(d, m) {
				return &Failure{Kind: FailureUndefinedReference, Detail: d}
			}
		}
		return &Failure{Kind: FailureTemplate, Detail: d}
	case errors.Is(err, docx.ErrMalformedOutput):
		return &Failure{Kind: FailureTemplate, Detail: err.Error()}
	}
	return nil
}

// detail strips the sentinel prefix from an error message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

package md2docx

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/richtext"
)

// funcs returns the template functions for one render. Markdown links are
// registered through walker.
func (r *Renderer) funcs(ctx context.Context, walker *richtext.Walker) template.FuncMap {
	return template.FuncMap{
		"get_vulnerable_endpoints": VulnerableEndpoints,
		"get_finding_images":       r.FindingImages,
		"parse_markdown": func(v any) (richtext.Sequence, error) {
			return r.parseMarkdown(ctx, walker, v)
		},
		"is_richtext": IsRichText,
		"format_date": r.formatDate,
	}
}

// ParseMarkdown converts Markdown text into runs. Links keep their raw target
// as handle. A nil value (including a nil *string) yields nil; an empty
// string yields an empty sequence.
func (r *Renderer) ParseMarkdown(ctx context.Context, v any) (richtext.Sequence, error) {
	return r.parseMarkdown(ctx, richtext.NewWalker(nil, r.images), v)
}

func (r *Renderer) parseMarkdown(ctx context.Context, w *richtext.Walker, v any) (richtext.Sequence, error) {
	var text string
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		text = val
	case *string:
		if val == nil {
			return nil, nil
		}
		text = *val
	case []byte:
		text = string(val)
	default:
		return nil, fmt.Errorf("%w: parse_markdown of %T", ErrUnsupportedValue, v)
	}
	if text == "" {
		return richtext.Sequence{}, nil
	}

	nodes, err := r.parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return w.WalkAll(nodes)
}

// IsRichText reports whether v is a text run, as opposed to an image run or
// any other value.
func IsRichText(v any) bool {
	switch val := v.(type) {
	case richtext.Run:
		return val.IsRichText()
	case *richtext.Run:
		return val != nil && val.IsRichText()
	}
	return false
}

// VulnerableEndpoints returns the endpoints of a finding that are not
// marked mitigated, in order.
func VulnerableEndpoints(v any) ([]Endpoint, error) {
	f, err := asFinding(v, "get_vulnerable_endpoints")
	if err != nil || f == nil {
		return nil, err
	}
	var out []Endpoint
	for _, s := range f.EndpointStatus {
		if !s.Mitigated {
			out = append(out, s.Endpoint)
		}
	}
	return out, nil
}

// FindingImages returns the image attachments of a finding, scaled to the
// fixed presentation width. The attachment titled "main" and files that are
// not images are skipped.
func (r *Renderer) FindingImages(v any) ([]richtext.Image, error) {
	f, err := asFinding(v, "get_finding_images")
	if err != nil || f == nil {
		return nil, err
	}

	var out []richtext.Image
	for _, file := range f.Files {
		if file.Title == mainImageTitle {
			continue
		}
		path := file.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.cfg.mediaRoot, path)
		}

		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrImageResolution, file.Path, err)
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			continue
		}

		img, err := r.images.Probe(path, richtext.WidthScaled)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func asFinding(v any, fn string) (*Finding, error) {
	switch f := v.(type) {
	case nil:
		return nil, nil
	case *Finding:
		return f, nil
	case Finding:
		return &f, nil
	}
	return nil, fmt.Errorf("%w: %s of %T", ErrUnsupportedValue, fn, v)
}

// formatDate formats a time with a dateutil layout or preset. An empty
// layout uses the configured default. Strings are parsed as RFC 3339 or
// YYYY-MM-DD.
func (r *Renderer) formatDate(layout string, v any) (string, error) {
	if layout == "" {
		layout = r.cfg.dateFormat
	}

	var t time.Time
	switch val := v.(type) {
	case nil:
		return "", nil
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return "", nil
		}
		t = *val
	case string:
		parsed, err := parseTime(val)
		if err != nil {
			return "", err
		}
		t = parsed
	default:
		return "", fmt.Errorf("%w: format_date of %T", ErrUnsupportedValue, v)
	}
	return dateutil.Format(t, layout)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: format_date of %q", ErrUnsupportedValue, s)
	}
	return t, nil
}

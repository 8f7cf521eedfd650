package md2docx

import (
	"context"
	"time"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// MarkdownParser turns Markdown into a tree of markup nodes.
type MarkdownParser interface {
	Parse(ctx context.Context, content string) ([]*richtext.Node, error)
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	mediaRoot      string
	now            func() time.Time
	highlightStyle string
	dateFormat     string
}

// WithMediaRoot sets the directory holding uploaded files. Markdown images
// resolve to <root>/uploaded_files/<name>; relative attachment paths resolve
// against root.
func WithMediaRoot(dir string) Option {
	return func(r *Renderer) {
		r.cfg.mediaRoot = dir
	}
}

// WithClock sets the source of the render time exposed as .date.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("md2docx: WithClock requires a non-nil function")
	}
	return func(r *Renderer) {
		r.cfg.now = now
	}
}

// WithMarkdownParser replaces the Goldmark-based parser.
func WithMarkdownParser(p MarkdownParser) Option {
	return func(r *Renderer) {
		r.parser = p
	}
}

// WithHighlighting enables fenced code highlighting with a chroma style.
// An empty style selects the default one. Ignored with WithMarkdownParser.
func WithHighlighting(style string) Option {
	return func(r *Renderer) {
		r.cfg.highlightStyle = style
		r.highlight = true
	}
}

// WithDateFormat sets the layout format_date uses when given an empty one.
func WithDateFormat(layout string) Option {
	return func(r *Renderer) {
		r.cfg.dateFormat = layout
	}
}

package markup

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// Parser converts markdown into top-level markup nodes.
// A Parser is safe for concurrent use.
type Parser struct {
	preprocessor  Preprocessor
	htmlConverter HTMLConverter
}

// Option configures a Parser.
type Option func(*parserConfig)

type parserConfig struct {
	highlightStyle string
}

// WithHighlighting enables fenced code highlighting with the given chroma style.
// An empty style selects DefaultHighlightStyle.
func WithHighlighting(style string) Option {
	return func(c *parserConfig) {
		if style == "" {
			style = DefaultHighlightStyle
		}
		c.highlightStyle = style
	}
}

// NewParser creates a Parser. Returns ErrUnknownStyle if highlighting is
// enabled with a style chroma does not provide.
func NewParser(opts ...Option) (*Parser, error) {
	var cfg parserConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	conv, err := NewGoldmarkConverter(cfg.highlightStyle)
	if err != nil {
		return nil, err
	}

	return &Parser{
		preprocessor:  &CommonMarkPreprocessor{},
		htmlConverter: conv,
	}, nil
}

// Parse converts markdown content into top-level nodes in document order.
func (p *Parser) Parse(ctx context.Context, content string) ([]*richtext.Node, error) {
	fragment, err := p.ToHTML(ctx, content)
	if err != nil {
		return nil, err
	}
	return BuildTree(fragment)
}

// ToHTML runs preprocessing and HTML conversion only.
func (p *Parser) ToHTML(ctx context.Context, content string) (string, error) {
	content = p.preprocessor.PreprocessMarkdown(ctx, content)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragment, err := p.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	return fragment, nil
}

// Compile-time interface implementation checks.
var (
	_ Preprocessor  = (*CommonMarkPreprocessor)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

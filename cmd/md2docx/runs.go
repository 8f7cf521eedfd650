package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-md2docx/internal/richtext"
	"github.com/alnah/go-md2docx/internal/textenc"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for the runs command.
var (
	ErrReadMarkdown      = errors.New("failed to read markdown")
	ErrInvalidRunsFormat = errors.New("invalid runs output format")
)

// Output formats of the runs command.
const (
	runsFormatText = "text"
	runsFormatYAML = "yaml"
)

// stdinArg reads markdown from standard input.
const stdinArg = "-"

// runView is the YAML form of a run.
type runView struct {
	Image *imageView `yaml:"image,omitempty"`
	Spans []spanView `yaml:"spans,omitempty"`
}

type spanView struct {
	Text      string `yaml:"text"`
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Strike    bool   `yaml:"strike,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Color     string `yaml:"color,omitempty"`
	Size      int    `yaml:"size,omitempty"`
	Link      string `yaml:"link,omitempty"`
}

type imageView struct {
	Path   string `yaml:"path"`
	Width  string `yaml:"width"`
	Pixels string `yaml:"pixels"`
	MIME   string `yaml:"mime"`
}

// runRuns prints the run sequence of one markdown document.
func runRuns(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRunsFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.format != runsFormatText && flags.format != runsFormatYAML {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidRunsFormat, flags.format, runsFormatText, runsFormatYAML)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: runs takes exactly one markdown file or -", ErrUsage)
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	mergeMarkdownFlags(&flags.markdown, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, charset, err := readMarkdown(positional[0], env.Stdin)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Charset: %s\n", charset)
	}

	renderer, err := newRenderer(cfg, env)
	if err != nil {
		return err
	}
	seq, err := renderer.ParseMarkdown(ctx, text)
	if err != nil {
		return err
	}

	if flags.format == runsFormatYAML {
		return writeRunsYAML(env.Stdout, seq)
	}
	writeRunsText(env.Stdout, seq)
	return nil
}

// readMarkdown reads path, or stdin for "-", and decodes it to UTF-8.
func readMarkdown(path string, stdin io.Reader) (text, charset string, err error) {
	var raw []byte
	if path == stdinArg {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	text, charset = textenc.Decode(raw)
	return text, charset, nil
}

// writeRunsText prints one line per run followed by its spans.
func writeRunsText(w io.Writer, seq richtext.Sequence) {
	for i, r := range seq {
		if r.IsImage() {
			img := r.Image
			fmt.Fprintf(w, "run %d: image %s %s %dx%dpx\n", i+1, img.Path, img.Width, img.PixelWidth, img.PixelHeight)
			continue
		}
		fmt.Fprintf(w, "run %d: text\n", i+1)
		for _, s := range r.Spans {
			if attrs := formatAttrs(s.Format); attrs != "" {
				fmt.Fprintf(w, "  %q %s\n", s.Text, attrs)
			} else {
				fmt.Fprintf(w, "  %q\n", s.Text)
			}
		}
	}
}

// formatAttrs lists the non-zero attributes of f.
func formatAttrs(f richtext.Format) string {
	var attrs []string
	if f.Bold {
		attrs = append(attrs, "bold")
	}
	if f.Italic {
		attrs = append(attrs, "italic")
	}
	if f.Strike {
		attrs = append(attrs, "strike")
	}
	if f.Underline {
		attrs = append(attrs, "underline")
	}
	if f.Color != "" {
		attrs = append(attrs, "color="+f.Color)
	}
	if f.Size > 0 {
		attrs = append(attrs, fmt.Sprintf("size=%d", f.Size))
	}
	if f.Link != "" {
		attrs = append(attrs, "link="+f.Link)
	}
	return strings.Join(attrs, " ")
}

// writeRunsYAML prints the sequence as a YAML list.
func writeRunsYAML(w io.Writer, seq richtext.Sequence) error {
	views := make([]runView, 0, len(seq))
	for _, r := range seq {
		if r.IsImage() {
			views = append(views, runView{Image: &imageView{
				Path:   r.Image.Path,
				Width:  r.Image.Width.String(),
				Pixels: fmt.Sprintf("%dx%d", r.Image.PixelWidth, r.Image.PixelHeight),
				MIME:   r.Image.MIME,
			}})
			continue
		}
		v := runView{Spans: make([]spanView, 0, len(r.Spans))}
		for _, s := range r.Spans {
			v.Spans = append(v.Spans, spanView{
				Text:      s.Text,
				Bold:      s.Format.Bold,
				Italic:    s.Format.Italic,
				Strike:    s.Format.Strike,
				Underline: s.Format.Underline,
				Color:     s.Format.Color,
				Size:      s.Format.Size,
				Link:      s.Format.Link,
			})
		}
		views = append(views, v)
	}

	out, err := yamlutil.Marshal(views)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}


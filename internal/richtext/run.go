package richtext

import "strings"

// Span is a piece of text carrying one fixed format.
type Span struct {
	Text   string
	Format Format
}

// Run is one element of a Sequence: either rich text made of spans opened with
// a base Format, or an embedded image. A rich text run may have no spans; the
// document writer treats it as a zero-width formatting breakpoint.
type Run struct {
	Format Format
	Spans  []Span
	Image  *Image
}

// TextRun creates a single-span run.
func TextRun(text string, f Format) Run {
	return Run{Format: f, Spans: []Span{{Text: text, Format: f}}}
}

// ImageRun creates a run embedding img.
func ImageRun(img Image) Run {
	return Run{Image: &img}
}

// IsImage reports whether the run embeds an image.
func (r Run) IsImage() bool {
	return r.Image != nil
}

// IsRichText reports whether the run carries text spans.
func (r Run) IsRichText() bool {
	return r.Image == nil
}

// Text returns the concatenated text of all spans.
func (r Run) Text() string {
	if len(r.Spans) == 1 {
		return r.Spans[0].Text
	}
	var b strings.Builder
	for _, s := range r.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Sequence is the ordered output of a walk.
type Sequence []Run

// Text returns the concatenated text of all rich text runs.
func (s Sequence) Text() string {
	var b strings.Builder
	for _, r := range s {
		if r.IsRichText() {
			b.WriteString(r.Text())
		}
	}
	return b.String()
}

// Images returns the images of the sequence in order.
func (s Sequence) Images() []Image {
	var out []Image
	for _, r := range s {
		if r.Image != nil {
			out = append(out, *r.Image)
		}
	}
	return out
}

package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// Fragments closing and reopening the text run around spliced content.
const (
	closeTextRun = `</w:t></w:r>`
	openTextRun  = `<w:r><w:t xml:space="preserve">`
)

// runWriter renders runs as WordprocessingML. It implements richtext.Sink.
type runWriter struct {
	tpl *Template
	buf strings.Builder
}

func newRunWriter(t *Template) *runWriter {
	return &runWriter{tpl: t}
}

// RegisterLink delegates to the template so handles are package-wide.
func (w *runWriter) RegisterLink(target string) string {
	return w.tpl.RegisterLink(target)
}

// AppendRun writes one <w:r> per span. A run without spans writes nothing.
func (w *runWriter) AppendRun(r richtext.Run) error {
	for _, s := range r.Spans {
		w.writeSpan(s)
	}
	return nil
}

// EmbedImage writes an image run, copying the file into the package.
func (w *runWriter) EmbedImage(img richtext.Image) error {
	drawing, err := w.tpl.embedImage(img)
	if err != nil {
		return err
	}
	w.buf.WriteString("<w:r>")
	w.buf.WriteString(drawing)
	w.buf.WriteString("</w:r>")
	return nil
}

func (w *runWriter) String() string {
	return w.buf.String()
}

func (w *runWriter) writeSpan(s richtext.Span) {
	f := s.Format
	if f.Link != "" {
		fmt.Fprintf(&w.buf, `<w:hyperlink xmlns:r="%s" r:id="%s">`, nsRelDoc, escapeAttr(f.Link))
	}
	w.buf.WriteString("<w:r>")
	w.buf.WriteString(runProperties(f))
	w.buf.WriteString(`<w:t xml:space="preserve">`)
	w.buf.WriteString(textXML(s.Text))
	w.buf.WriteString("</w:t></w:r>")
	if f.Link != "" {
		w.buf.WriteString("</w:hyperlink>")
	}
}

// runProperties renders <w:rPr> in schema order, or "" for the zero Format.
func runProperties(f richtext.Format) string {
	var b strings.Builder
	if f.Bold {
		b.WriteString("<w:b/>")
	}
	if f.Italic {
		b.WriteString("<w:i/>")
	}
	if f.Strike {
		b.WriteString("<w:strike/>")
	}
	if f.Color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, escapeAttr(strings.TrimPrefix(f.Color, "#")))
	}
	if f.Size > 0 {
		size := strconv.Itoa(f.Size)
		fmt.Fprintf(&b, `<w:sz w:val="%s"/><w:szCs w:val="%s"/>`, size, size)
	}
	if f.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<w:rPr>" + b.String() + "</w:rPr>"
}

// textXML escapes text for use inside <w:t>, turning newlines into breaks
// and tabs into tab elements.
func textXML(s string) string {
	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteString(`</w:t><w:br/><w:t xml:space="preserve">`)
		}
		for j, cell := range strings.Split(line, "\t") {
			if j > 0 {
				b.WriteString(`</w:t><w:tab/><w:t xml:space="preserve">`)
			}
			_ = xml.EscapeText(&b, []byte(cell))
		}
	}
	return b.String()
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

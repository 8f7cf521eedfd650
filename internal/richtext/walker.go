package richtext

import (
	"fmt"
	"strconv"
	"strings"
)

// List item markers.
const (
	bulletMarker = "· "
)

// LinkRegistrar turns a hyperlink target into an opaque handle understood by
// the document writer.
type LinkRegistrar interface {
	RegisterLink(target string) string
}

// ImageSource resolves an image reference found in markup.
type ImageSource interface {
	Resolve(src string) (Image, error)
}

// Walker converts markup trees into run sequences.
// A Walker holds no per-walk state and may be reused across walks.
type Walker struct {
	links  LinkRegistrar
	images ImageSource
}

// NewWalker creates a Walker. links may be nil, in which case hyperlinks keep
// their formatting but carry the raw target as handle. images may be nil, in
// which case any image node fails with ErrImageResolution.
func NewWalker(links LinkRegistrar, images ImageSource) *Walker {
	return &Walker{links: links, images: images}
}

// WalkAll walks top-level nodes in order, each from the zero Format.
func (w *Walker) WalkAll(nodes []*Node) (Sequence, error) {
	out := Sequence{}
	for _, n := range nodes {
		seq, err := w.Walk(n, Format{})
		if err != nil {
			return nil, err
		}
		out = append(out, seq...)
	}
	return out, nil
}

// Walk converts the subtree rooted at n, inheriting f.
func (w *Walker) Walk(n *Node, f Format) (Sequence, error) {
	if n == nil {
		return nil, nil
	}

	f = w.derive(n, f)

	switch n.Kind {
	case KindText:
		return Sequence{TextRun(n.Text, f)}, nil
	case KindImage:
		return w.image(n)
	case KindTable:
		// Table layout is unsupported; tables produce nothing.
		return nil, nil
	case KindUnorderedList:
		return Sequence{listRun(n, f, func(int) string { return bulletMarker })}, nil
	case KindOrderedList:
		return Sequence{listRun(n, f, func(i int) string { return strconv.Itoa(i+1) + ". " })}, nil
	case KindParagraph:
		return w.paragraph(n, f)
	default:
		return w.children(n, f)
	}
}

// derive applies the formatting contributed by n itself.
func (w *Walker) derive(n *Node, f Format) Format {
	switch n.Kind {
	case KindHeading:
		if size, ok := HeadingSize(n.Level); ok {
			f = f.WithBold().WithSize(size)
		}
	case KindBold:
		f = f.WithBold()
	case KindItalic:
		f = f.WithItalic()
	case KindStrike:
		f = f.WithStrike()
	case KindLink:
		f = f.WithLink(w.registerLink(n.Attr(AttrHref)))
	case KindSpan:
		if c := n.Attr(AttrColor); c != "" {
			f = f.WithColor(c)
		}
	}
	return f
}

func (w *Walker) registerLink(target string) string {
	if w.links == nil {
		return target
	}
	return w.links.RegisterLink(target)
}

func (w *Walker) image(n *Node) (Sequence, error) {
	src := n.Attr(AttrSrc)
	if w.images == nil {
		return nil, fmt.Errorf("%w: %q: no image source configured", ErrImageResolution, src)
	}
	img, err := w.images.Resolve(src)
	if err != nil {
		return nil, err
	}
	return Sequence{ImageRun(img)}, nil
}

// paragraph merges child text into a current run and flushes it around images.
func (w *Walker) paragraph(n *Node, f Format) (Sequence, error) {
	var out Sequence
	acc := newAccumulator(f)
	for _, c := range n.Children {
		seq, err := w.Walk(c, f)
		if err != nil {
			return nil, err
		}
		for _, r := range seq {
			if r.IsImage() {
				out = append(out, acc.Flush(), r)
				continue
			}
			acc.Add(r)
		}
	}
	return append(out, acc.Flush()), nil
}

func (w *Walker) children(n *Node, f Format) (Sequence, error) {
	var out Sequence
	for _, c := range n.Children {
		seq, err := w.Walk(c, f)
		if err != nil {
			return nil, err
		}
		out = append(out, seq...)
	}
	return out, nil
}

// listRun renders the items of a list as one run of plain text, one span per item.
// Nested content of an item is flattened to its text.
func listRun(n *Node, f Format, marker func(i int) string) Run {
	r := Run{Format: f}
	i := 0
	for _, c := range n.Children {
		if c.Kind != KindListItem {
			continue
		}
		text := "\n" + marker(i) + strings.TrimSpace(c.PlainText()) + "\n"
		r.Spans = append(r.Spans, Span{Text: text, Format: f})
		i++
	}
	return r
}

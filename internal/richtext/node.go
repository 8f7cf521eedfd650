package richtext

import "strings"

// Kind discriminates Node variants.
type Kind int

// Node kinds.
const (
	KindContainer Kind = iota
	KindParagraph
	KindHeading
	KindBold
	KindItalic
	KindStrike
	KindLink
	KindUnorderedList
	KindOrderedList
	KindListItem
	KindImage
	KindTable
	KindText
	KindSpan
)

var kindNames = [...]string{
	KindContainer:     "container",
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindBold:          "bold",
	KindItalic:        "italic",
	KindStrike:        "strike",
	KindLink:          "link",
	KindUnorderedList: "unordered-list",
	KindOrderedList:   "ordered-list",
	KindListItem:      "list-item",
	KindImage:         "image",
	KindTable:         "table",
	KindText:          "text",
	KindSpan:          "span",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Attribute keys used by node kinds.
const (
	AttrSrc   = "src"   // KindImage
	AttrHref  = "href"  // KindLink
	AttrColor = "color" // KindSpan
)

// Node is one element of a markup tree.
//
// KindText uses Text only. KindImage uses Attrs[AttrSrc]. KindHeading uses Level
// and Children. KindLink and KindSpan use Attrs and Children. All other kinds use
// Children only.
type Node struct {
	Kind     Kind
	Level    int
	Text     string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the attribute value for key, or "" when unset.
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// PlainText returns the concatenated text of the subtree, without formatting.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Text creates a text leaf.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Element creates a node of the given kind with children.
func Element(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Heading creates a heading node of the given level.
func Heading(level int, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Level: level, Children: children}
}

// Link creates a hyperlink node pointing at href.
func Link(href string, children ...*Node) *Node {
	return &Node{Kind: KindLink, Attrs: map[string]string{AttrHref: href}, Children: children}
}

// ImageRef creates an image node referencing src.
func ImageRef(src string) *Node {
	return &Node{Kind: KindImage, Attrs: map[string]string{AttrSrc: src}}
}

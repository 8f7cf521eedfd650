package markup

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// inlineColor extracts the text color from a style attribute, ignoring
// background-color and friends.
var inlineColor = regexp.MustCompile(`(?:^|;)\s*color\s*:\s*(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3})\b`)

// headingLevels maps heading atoms to levels.
var headingLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// BuildTree parses an HTML fragment and returns its top-level elements as nodes.
// Text between top-level elements is dropped; text inside elements is kept verbatim.
func BuildTree(fragment string) ([]*richtext.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	out := make([]*richtext.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		if node := convertNode(n); node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

// convertNode maps one DOM node. Returns nil for nodes without content
// (comments, doctype).
func convertNode(n *html.Node) *richtext.Node {
	switch n.Type {
	case html.TextNode:
		return richtext.Text(n.Data)
	case html.ElementNode:
		return convertElement(n)
	default:
		return nil
	}
}

func convertElement(n *html.Node) *richtext.Node {
	switch n.DataAtom {
	case atom.Img:
		return richtext.ImageRef(attr(n, "src"))
	case atom.Br:
		return richtext.Text("\n")
	}

	node := &richtext.Node{Kind: elementKind(n)}
	switch node.Kind {
	case richtext.KindHeading:
		node.Level = headingLevels[n.DataAtom]
	case richtext.KindLink:
		node.Attrs = map[string]string{richtext.AttrHref: attr(n, "href")}
	case richtext.KindSpan:
		if m := inlineColor.FindStringSubmatch(attr(n, "style")); m != nil {
			node.Attrs = map[string]string{richtext.AttrColor: strings.ToLower(m[1])}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convertNode(c); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

func elementKind(n *html.Node) richtext.Kind {
	if _, ok := headingLevels[n.DataAtom]; ok {
		return richtext.KindHeading
	}
	switch n.DataAtom {
	case atom.P:
		return richtext.KindParagraph
	case atom.Strong, atom.B:
		return richtext.KindBold
	case atom.Em, atom.I:
		return richtext.KindItalic
	case atom.S, atom.Del:
		return richtext.KindStrike
	case atom.A:
		return richtext.KindLink
	case atom.Ul:
		return richtext.KindUnorderedList
	case atom.Ol:
		return richtext.KindOrderedList
	case atom.Li:
		return richtext.KindListItem
	case atom.Table:
		return richtext.KindTable
	case atom.Span:
		return richtext.KindSpan
	default:
		return richtext.KindContainer
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Package markup turns markdown source into a richtext.Node tree.
//
// Stages:
//   - Markdown preprocessing (line ending normalization, blank line compression)
//   - Markdown to HTML conversion via Goldmark (GFM tables, strikethrough,
//     optional syntax highlighting of fenced code with inline chroma colors)
//   - HTML fragment parsing (golang.org/x/net/html) and mapping of elements to
//     node kinds
//
// Raw HTML embedded in markdown is not rendered by Goldmark and therefore never
// reaches the tree.
package markup

package richtext

// LinkColor is the presentation color applied to hyperlink runs.
const LinkColor = "#0044aa"

// headingSizes maps heading levels to font sizes in half-points.
var headingSizes = map[int]int{
	1: 40,
	2: 36,
	3: 32,
	4: 28,
	5: 24,
	6: 24,
}

// HeadingSize returns the font size in half-points for a heading level.
// The boolean is false for levels outside 1-6.
func HeadingSize(level int) (int, bool) {
	size, ok := headingSizes[level]
	return size, ok
}

// Format holds the text presentation inherited down the markup tree.
// The zero value is plain text. Format is a value type: the With* methods
// return a modified copy and never touch the receiver.
type Format struct {
	Bold      bool
	Italic    bool
	Strike    bool
	Underline bool
	Color     string // hex color with leading '#', empty = inherited document color
	Size      int    // half-points, 0 = inherited document size
	Link      string // opaque link handle from a LinkRegistrar, empty = no link
}

// WithBold returns a copy with bold turned on.
func (f Format) WithBold() Format {
	f.Bold = true
	return f
}

// WithItalic returns a copy with italic turned on.
func (f Format) WithItalic() Format {
	f.Italic = true
	return f
}

// WithStrike returns a copy with strikethrough turned on.
func (f Format) WithStrike() Format {
	f.Strike = true
	return f
}

// WithSize returns a copy with the given size in half-points.
func (f Format) WithSize(halfPoints int) Format {
	f.Size = halfPoints
	return f
}

// WithColor returns a copy with the given hex color.
func (f Format) WithColor(color string) Format {
	f.Color = color
	return f
}

// WithLink returns a copy carrying the link handle, underlined in LinkColor.
func (f Format) WithLink(handle string) Format {
	f.Link = handle
	f.Underline = true
	f.Color = LinkColor
	return f
}

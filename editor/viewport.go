package editor

// Default scroll margins, in rows and columns.
const (
	DefaultScrollMargin           = 2
	DefaultHorizontalScrollMargin = 5
)

// Viewport is the visible window onto the document. ScrollOffset and
// HorizontalOffset name its top-left corner; Height and Width come from the
// host. Horizontal values are terminal cells, which equal rune columns for
// single-width text.
type Viewport struct {
	ScrollOffset     int
	HorizontalOffset int
	Height           int
	Width            int

	// MaxMargin and MaxHMargin cap the soft scroll margins. The effective
	// margin is min(MaxMargin, Height/4), and likewise for the width.
	MaxMargin  int
	MaxHMargin int
}

// NewViewport returns an unsized viewport with the default margins.
func NewViewport() Viewport {
	return Viewport{
		MaxMargin:  DefaultScrollMargin,
		MaxHMargin: DefaultHorizontalScrollMargin,
	}
}

// Margin is the effective vertical scroll margin.
func (v Viewport) Margin() int { return minInt(maxInt(v.MaxMargin, 0), v.Height/4) }

// HMargin is the effective horizontal scroll margin.
func (v Viewport) HMargin() int { return minInt(maxInt(v.MaxHMargin, 0), v.Width/4) }

// Follow scrolls just enough to keep c at least a margin away from the
// viewport edges. It is idempotent.
func (v Viewport) Follow(c Cursor, lineCount int) Viewport {
	return v.FollowCell(c.Row, c.Col, 1, lineCount)
}

// FollowCell is Follow for a cursor that starts at terminal cell cell of row
// and covers width cells. HorizontalOffset and Width are then in cells. A
// cursor wider than the viewport keeps its first cell visible.
func (v Viewport) FollowCell(row, cell, width, lineCount int) Viewport {
	if v.Height > 0 {
		v.ScrollOffset = follow(row, v.ScrollOffset, v.Height, v.Margin())
		v.ScrollOffset = minInt(v.ScrollOffset, maxInt(0, lineCount-v.Height))
	} else {
		v.ScrollOffset = 0
	}

	if v.Width > 0 {
		v.HorizontalOffset = follow(cell, v.HorizontalOffset, v.Width, v.HMargin())
		if end := cell + width; width <= v.Width && end > v.HorizontalOffset+v.Width {
			v.HorizontalOffset = end - v.Width
		}
	} else {
		v.HorizontalOffset = 0
	}
	return v
}

func follow(pos, offset, size, margin int) int {
	switch {
	case pos < offset+margin:
		return maxInt(0, pos-margin)
	case pos >= offset+size-margin:
		off := maxInt(0, pos+margin-size)
		if pos >= off+size {
			// Only reachable with a zero margin.
			off = pos - size + 1
		}
		return off
	default:
		return offset
	}
}

// Visible reports whether c falls inside the viewport.
func (v Viewport) Visible(c Cursor) bool {
	return c.Row >= v.ScrollOffset && c.Row < v.ScrollOffset+v.Height &&
		c.Col >= v.HorizontalOffset && c.Col < v.HorizontalOffset+v.Width
}

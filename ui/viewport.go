package ui

// A Viewport maps a buffer's line count and the available display size to
// the window of rows currently visible, plus the vertical scroll offset. It
// never looks at line content.
//
// The Viewport is a small state machine with two states: clean, meaning the
// cached layout is valid for the current size and content length, and dirty,
// meaning it must recompute. Buffer mutations and size changes mark it
// dirty; Recompute transitions it back to clean and caches the size it laid
// out for.
type Viewport struct {
	scroll int // First visible row

	// Cached layout, valid while clean
	width, height int
	lines         int
	rows          int  // Laid-out row count, including any ghost row
	scrollbar     bool // Whether one column of width is reserved for a scrollbar
	dirty         bool
}

func NewViewport() *Viewport {
	return &Viewport{dirty: true}
}

func (v *Viewport) Dirty() bool {
	return v.dirty
}

// Invalidate marks the cached layout as stale. Any buffer mutation should
// invalidate the viewport.
func (v *Viewport) Invalidate() {
	v.dirty = true
}

// Recompute lays out the visible rows for the given display size and line
// count, if the viewport is dirty or the size or content length changed
// since the last layout. A ghost row is appended when the last real line is
// not already an empty one, so the cursor can always be placed one past the
// final line. If the laid-out rows exceed the available height, the layout
// reserves one column of width for a scrollbar. On return the viewport is
// clean.
func (v *Viewport) Recompute(width, height, lines int, lastLineEmpty bool) {
	rows := lines
	if !lastLineEmpty {
		rows++ // Ghost row
	}

	if !v.dirty && width == v.width && height == v.height && rows == v.rows {
		return
	}

	v.width, v.height = width, height
	v.lines = lines
	v.rows = rows
	v.scrollbar = rows > height
	v.scroll = Clamp(v.scroll, 0, v.maxScroll())
	v.dirty = false
}

func (v *Viewport) maxScroll() int {
	return Max(0, v.rows-v.height)
}

func (v *Viewport) Scroll() int {
	return v.scroll
}

// Rows returns the laid-out row count, including the ghost row.
func (v *Viewport) Rows() int {
	return v.rows
}

func (v *Viewport) HasScrollbar() bool {
	return v.scrollbar
}

// ContentWidth returns the width available for line content, after any
// scrollbar reservation.
func (v *Viewport) ContentWidth() int {
	if v.scrollbar {
		return Max(0, v.width-1)
	}
	return v.width
}

// VisibleRows returns the window of rows in view as [start, end).
func (v *Viewport) VisibleRows() (start, end int) {
	return v.scroll, Min(v.scroll+v.height, v.rows)
}

// ScrollTo adjusts the scroll offset so that row falls inside the visible
// window, clamping at both ends. Scrolling does not mark the viewport
// dirty: the layout is still valid, only the window moved.
func (v *Viewport) ScrollTo(row int) {
	if row < v.scroll {
		v.scroll = row
	} else if row >= v.scroll+v.height {
		v.scroll = row - v.height + 1
	}
	v.scroll = Clamp(v.scroll, 0, v.maxScroll())
}

// ScrollBy moves the window by delta rows without tracking any cursor.
func (v *Viewport) ScrollBy(delta int) {
	v.scroll = Clamp(v.scroll+delta, 0, v.maxScroll())
}

// CanScrollUp reports whether the window can move up.
func (v *Viewport) CanScrollUp() bool {
	return v.scroll > 0
}

// CanScrollDown reports whether the window can move down.
func (v *Viewport) CanScrollDown() bool {
	return v.scroll < v.maxScroll()
}

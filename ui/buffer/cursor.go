package buffer

// So why is the code for moving the cursor in the buffer package, and not in
// the CodeEdit component? The cursor needs a reference to the buffer to know
// where lines end and how it can move. The buffer is the city, and the Cursor
// is the car.

// A Cursor is a position within a Buffer: a row, and a column counted in
// runes. The column may equal the line length, meaning "after the last
// character". Cursor functions emulate common cursor actions and always
// return a position clamped inside the buffer.
type Cursor struct {
	buffer *Buffer
	row    int
	col    int
}

func NewCursor(in *Buffer) Cursor {
	return Cursor{buffer: in}
}

func (c Cursor) RowCol() (row, col int) {
	return c.row, c.col
}

// SetRowCol sets the row and col of the Cursor to those provided. row is
// clamped within the range (0, lines in buffer); col is then clamped within
// the range (0, line length in runes).
func (c Cursor) SetRowCol(row, col int) Cursor {
	c.row, c.col = (*c.buffer).ClampRowCol(row, col)
	return c
}

func (c Cursor) Left() Cursor {
	if c.row == 0 && c.col == 0 { // Nowhere left to go
		return c
	}
	if c.col == 0 { // At the beginning of the line: wrap to the end of the one above
		c.row--
		c.col = (*c.buffer).LineLen(c.row)
	} else {
		c.col--
	}
	return c
}

func (c Cursor) Right() Cursor {
	// At the end of the line and not on the last line: wrap to the line below
	if c.col >= (*c.buffer).LineLen(c.row) && c.row < (*c.buffer).Lines()-1 {
		c.row, c.col = (*c.buffer).ClampRowCol(c.row+1, 0)
	} else {
		c.row, c.col = (*c.buffer).ClampRowCol(c.row, c.col+1)
	}
	return c
}

func (c Cursor) Up() Cursor {
	if c.row == 0 { // You can't move up
		return c
	}
	c.row, c.col = (*c.buffer).ClampRowCol(c.row-1, c.col)
	return c
}

func (c Cursor) Down() Cursor {
	if c.row == (*c.buffer).Lines()-1 { // On the last line: go to its end
		c.row, c.col = (*c.buffer).ClampRowCol(c.row, (*c.buffer).LineLen(c.row))
	} else {
		c.row, c.col = (*c.buffer).ClampRowCol(c.row+1, c.col)
	}
	return c
}

func (c Cursor) Home() Cursor {
	c.col = 0
	return c
}

func (c Cursor) End() Cursor {
	c.col = (*c.buffer).LineLen(c.row)
	return c
}

func (c Cursor) Eq(other Cursor) bool {
	return c.buffer == other.buffer && c.row == other.row && c.col == other.col
}

// Less reports whether c comes before other in the buffer, comparing rows
// first and columns second.
func (c Cursor) Less(other Cursor) bool {
	if c.row != other.row {
		return c.row < other.row
	}
	return c.col < other.col
}

// A Region is the span between a selection anchor and the cursor. It is
// asserted that Start is not after End, whichever direction the selection
// was made in. Both bounds point at cursor positions, so the span covers
// the characters from Start up to, but not including, End; line boundaries
// inside the span count as one character each.
type Region struct {
	Start Cursor
	End   Cursor
}

// NewRegion orders anchor and cursor into a Region, comparing rows first
// and columns second, so selecting backward resolves the same as selecting
// forward.
func NewRegion(anchor, cursor Cursor) Region {
	if cursor.Less(anchor) {
		return Region{Start: cursor, End: anchor}
	}
	return Region{Start: anchor, End: cursor}
}

// Size returns the number of characters the Region covers, counting each
// line boundary inside it as one implicit character.
func (r Region) Size() int {
	buf := *r.Start.buffer
	if r.Start.row == r.End.row {
		return r.End.col - r.Start.col
	}
	size := buf.LineLen(r.Start.row) - r.Start.col + 1 // Rest of the first line and its boundary
	for row := r.Start.row + 1; row < r.End.row; row++ {
		size += buf.LineLen(row) + 1
	}
	return size + r.End.col
}

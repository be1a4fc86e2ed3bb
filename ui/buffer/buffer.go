package buffer

import (
	"errors"
	"io"
)

// ErrOutOfRange is returned by a Buffer's direct accessors when a row index
// does not point inside the buffer. The Editor clamps every row and column
// before touching the Buffer, so this should never surface past the Buffer
// itself.
var ErrOutOfRange = errors.New("row out of range")

// ErrInvalidOperation is returned for structural edits that would break a
// Buffer invariant, like removing the only remaining line.
var ErrInvalidOperation = errors.New("invalid operation")

// A Buffer is a wrapper around any data structure that can hold an ordered
// sequence of text lines, like a slice of strings or a rope. Lines never
// contain a line delimiter; the delimiter is implied between rows. All rows
// and columns start at zero. A Buffer always holds at least one line, and
// the final line is conventionally kept empty so the cursor can sit one past
// the last real line.
//
// Row arguments out of range return ErrOutOfRange. If you are unsure your
// position may be out of bounds, use ClampRowCol() or compare with Lines().
type Buffer interface {
	// Lines returns the number of lines in the buffer, which is always at
	// least 1.
	Lines() int

	// Line returns the text of the given row, without any line delimiter.
	Line(row int) (string, error)

	// LineLen returns the number of runes in the given row. The row is
	// clamped into the buffer first, so LineLen never fails.
	LineLen(row int) int

	// SetLine replaces the text of the given row.
	SetLine(row int, text string) error

	// InsertLine inserts text as a new line at the given row, shifting that
	// row and the ones below it down. row may equal Lines() to append a
	// line at the end.
	InsertLine(row int, text string) error

	// RemoveLine deletes the given row. Removing the sole remaining line is
	// rejected with ErrInvalidOperation.
	RemoveLine(row int) error

	// Join appends the line below row onto row and removes it. Joining at
	// the last line is rejected with ErrInvalidOperation.
	Join(row int) error

	// Split truncates the given row at col (counted in runes) and inserts
	// the remainder as a new line directly below it.
	Split(row, col int) error

	// ClampRowCol is a utility function to clamp any provided row and col
	// to only possible values within the buffer. It first clamps the row,
	// then clamps the column between zero and the number of runes in that
	// row.
	ClampRowCol(row, col int) (int, int)

	// String returns the entire buffer contents with lines joined by '\n'.
	String() string

	WriteTo(w io.Writer) (int64, error)
}

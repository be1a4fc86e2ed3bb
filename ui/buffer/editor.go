package buffer

import (
	"strings"
	"unicode/utf8"
)

// PageSize is how many rows PageUp and PageDown travel.
const PageSize = 8

// An Editor combines a Buffer with a cursor, an optional selection anchor
// and a clipboard slot, and exposes the editing operations on top of them.
// Every operation clamps out-of-range positions before use instead of
// returning an error: input events arrive faster than validation can
// reasonably reject them, so the contract is best-effort, always leaving a
// valid buffer and cursor behind.
type Editor struct {
	buf    Buffer
	cursor Cursor
	anchor *Cursor // Selection anchor; nil while not selecting
	clip   Clipboard

	// CommentPrefix is prepended to (or stripped from) lines by the comment
	// toggling operations.
	CommentPrefix string

	// TabSize is the number of spaces a '\t' inserts.
	TabSize int
}

// NewEditor wraps buf in an Editor. A nil clip gets an in-memory slot.
func NewEditor(buf Buffer, clip Clipboard) *Editor {
	if clip == nil {
		clip = &SlotClipboard{}
	}
	e := &Editor{
		buf:           buf,
		clip:          clip,
		CommentPrefix: "// ",
		TabSize:       4,
	}
	e.cursor = NewCursor(&e.buf)
	e.fix()
	return e
}

func (e *Editor) Buffer() Buffer {
	return e.buf
}

// Contents returns the full buffer text, lines joined by '\n'.
func (e *Editor) Contents() string {
	return e.buf.String()
}

func (e *Editor) CursorRowCol() (row, col int) {
	return e.cursor.RowCol()
}

// SetCursorRowCol places the cursor, clamped into the buffer.
func (e *Editor) SetCursorRowCol(row, col int) {
	e.cursor = e.cursor.SetRowCol(row, col)
}

// Cursor movement. Left at column zero wraps to the end of the line above;
// Right at the end of a line wraps to the start of the line below.

func (e *Editor) MoveLeft() {
	e.cursor = e.cursor.Left()
	e.fix()
}

func (e *Editor) MoveRight() {
	e.cursor = e.cursor.Right()
	e.fix()
}

func (e *Editor) MoveUp() {
	e.cursor = e.cursor.Up()
	e.fix()
}

func (e *Editor) MoveDown() {
	e.cursor = e.cursor.Down()
	e.fix()
}

func (e *Editor) MoveHome() {
	e.cursor = e.cursor.Home()
}

func (e *Editor) MoveEnd() {
	e.cursor = e.cursor.End()
}

func (e *Editor) PageUp() {
	for i := 0; i < PageSize; i++ {
		e.MoveUp()
	}
}

func (e *Editor) PageDown() {
	for i := 0; i < PageSize; i++ {
		e.MoveDown()
	}
}

// StartOrExtendSelection records the selection anchor at the cursor if no
// selection is active. It is idempotent while a shift-style extension is
// held, so repeated extend actions keep the original anchor.
func (e *Editor) StartOrExtendSelection() {
	if e.anchor == nil {
		anchor := e.cursor
		e.anchor = &anchor
	}
}

func (e *Editor) ClearSelection() {
	e.anchor = nil
}

func (e *Editor) Selecting() bool {
	return e.anchor != nil
}

// SelectionAnchor reports the anchor position while a selection is active.
func (e *Editor) SelectionAnchor() (row, col int, ok bool) {
	if e.anchor == nil {
		return 0, 0, false
	}
	row, col = e.anchor.RowCol()
	return row, col, true
}

// ResolveRange normalizes the anchor and cursor into an ordered Region.
// There is no range when no selection is active, or when the anchor sits
// exactly at the cursor.
func (e *Editor) ResolveRange() (Region, bool) {
	if e.anchor == nil {
		return Region{}, false
	}
	anchor := e.anchor.SetRowCol(e.anchor.RowCol()) // Re-clamp; the buffer may have shrunk
	if anchor.Eq(e.cursor) {
		return Region{}, false
	}
	return NewRegion(anchor, e.cursor), true
}

// InsertRune inserts one character at the cursor. A line-break splits the
// current line and places the cursor at the start of the new one; a tab
// inserts TabSize spaces instead of a literal '\t'.
func (e *Editor) InsertRune(ch rune) {
	e.fix()
	row, col := e.cursor.RowCol()
	switch ch {
	case '\n':
		e.buf.Split(row, col)
		e.cursor = e.cursor.SetRowCol(row+1, 0)
	case '\r':
		// CRs are dropped; delimiters are normalized on load
	case '\t':
		e.InsertString(strings.Repeat(" ", e.TabSize))
	default:
		line, _ := e.buf.Line(row)
		runes := []rune(line)
		runes = append(runes[:col], append([]rune{ch}, runes[col:]...)...)
		e.buf.SetLine(row, string(runes))
		e.cursor = e.cursor.SetRowCol(row, col+1)
	}
	e.fix()
}

// InsertString inserts s character by character at the cursor, so any
// line-breaks in it produce real line splits. The cursor ends after the
// inserted text.
func (e *Editor) InsertString(s string) {
	for _, ch := range s {
		e.InsertRune(ch)
	}
	e.fix()
}

// DeleteForward removes the character at the cursor. At the end of a line it
// joins the line below onto this one; at the very end of the buffer it does
// nothing.
func (e *Editor) DeleteForward() {
	e.fix()
	row, col := e.cursor.RowCol()
	if col >= e.buf.LineLen(row) {
		if row < e.buf.Lines()-1 {
			e.buf.Join(row)
		}
	} else {
		line, _ := e.buf.Line(row)
		runes := []rune(line)
		e.buf.SetLine(row, string(append(runes[:col], runes[col+1:]...)))
	}
	e.fix()
}

// Backspace moves left and deletes forward, which keeps it observably
// identical to that composition. Does nothing at the start of the buffer.
func (e *Editor) Backspace() {
	if row, col := e.cursor.RowCol(); row == 0 && col == 0 {
		return
	}
	e.MoveLeft()
	e.DeleteForward()
}

// charAt returns the character at the given position, treating the line
// boundary past the end of a row as '\n'.
func (e *Editor) charAt(row, col int) rune {
	line, err := e.buf.Line(row)
	if err != nil {
		return '\n'
	}
	runes := []rune(line)
	if col >= len(runes) {
		return '\n'
	}
	return runes[col]
}

// removeRegion deletes the characters the Region covers by repeated forward
// deletion from its start, returning the removed text. The cursor ends at
// the start of the region.
func (e *Editor) removeRegion(r Region) string {
	size := r.Size()
	startRow, startCol := r.Start.RowCol()
	e.cursor = e.cursor.SetRowCol(startRow, startCol)

	var sb strings.Builder
	for i := 0; i < size; i++ {
		sb.WriteRune(e.charAt(e.cursor.RowCol()))
		e.DeleteForward()
	}
	return sb.String()
}

// Cut removes the selected range and stores it in the clipboard, leaving the
// cursor at the start of the range. An active selection whose anchor sits at
// the cursor selects nothing, so it cuts nothing. Without any selection it
// removes the whole current line, storing it with a trailing line-break; the
// sole remaining line is never removed.
func (e *Editor) Cut() {
	e.fix()
	if region, ok := e.ResolveRange(); ok {
		e.clip.WriteText(e.removeRegion(region))
		e.ClearSelection()
	} else if !e.Selecting() && e.buf.Lines() > 1 {
		row, col := e.cursor.RowCol()
		line, _ := e.buf.Line(row)
		e.buf.RemoveLine(row)
		e.clip.WriteText(line + "\n")
		e.cursor = e.cursor.SetRowCol(row, col)
	}
	e.fix()
}

// Copy stores the selected range in the clipboard without changing the
// buffer. It is implemented as cut-and-paste with the cursor restored, which
// guarantees copy and cut agree on what a range contains. An empty active
// selection copies nothing. Without any selection it stores the current line
// with a trailing line-break.
func (e *Editor) Copy() {
	saved := e.cursor
	if _, ok := e.ResolveRange(); ok {
		e.Cut()
		e.Paste()
		e.cursor = saved
	} else if !e.Selecting() {
		row, _ := e.cursor.RowCol()
		line, _ := e.buf.Line(row)
		e.clip.WriteText(line + "\n")
	}
	e.fix()
}

// Paste inserts the clipboard contents at the cursor. Line-breaks in the
// clipboard produce real line splits; the cursor ends after the inserted
// text.
func (e *Editor) Paste() {
	text, err := e.clip.ReadText()
	if err != nil {
		return
	}
	e.InsertString(text)
	e.fix()
}

// DuplicateLineDown inserts a copy of the current line directly below it and
// moves the cursor down one row, preserving the column.
func (e *Editor) DuplicateLineDown() {
	e.fix()
	row, col := e.cursor.RowCol()
	line, _ := e.buf.Line(row)
	e.buf.InsertLine(row+1, line)
	e.cursor = e.cursor.SetRowCol(row+1, col)
	e.fix()
}

// ToggleCommentLine prepends CommentPrefix to the given row, or strips one
// leading prefix if the row already starts with it. When the cursor is on
// that row its column shifts with the text, floored at zero.
func (e *Editor) ToggleCommentLine(row int) {
	row, _ = e.buf.ClampRowCol(row, 0)
	prefix := e.CommentPrefix
	n := utf8.RuneCountInString(prefix)
	line, _ := e.buf.Line(row)
	curRow, curCol := e.cursor.RowCol()

	if len(line) < len(prefix) || !strings.HasPrefix(line, prefix) {
		e.buf.SetLine(row, prefix+line)
		if curRow == row {
			e.cursor = e.cursor.SetRowCol(curRow, curCol+n)
		}
	} else {
		e.buf.SetLine(row, line[len(prefix):])
		if curRow == row {
			if curCol <= n {
				curCol = 0
			} else {
				curCol -= n
			}
			e.cursor = e.cursor.SetRowCol(curRow, curCol)
		}
	}
	e.fix()
}

// ToggleCommentSelection toggles the comment prefix on every row the
// selection spans, by row index only, then restores the cursor to its
// original row with the column shifted by one prefix length.
func (e *Editor) ToggleCommentSelection() {
	if e.anchor == nil {
		return
	}
	origRow, origCol := e.cursor.RowCol()
	anchorRow, _ := e.anchor.RowCol()

	begin, end := anchorRow, origRow
	if begin > end {
		begin, end = end, begin
	}
	for row := begin; row <= end; row++ {
		e.ToggleCommentLine(row)
	}

	e.cursor = e.cursor.SetRowCol(origRow, origCol+utf8.RuneCountInString(e.CommentPrefix))
	e.fix()
}

// TransposeLineUp swaps the given row with the one above it; the cursor
// follows if it was on that row. Does nothing at the first row.
func (e *Editor) TransposeLineUp(row int) {
	row, _ = e.buf.ClampRowCol(row, 0)
	if row == 0 {
		return
	}
	above, _ := e.buf.Line(row - 1)
	current, _ := e.buf.Line(row)
	e.buf.SetLine(row-1, current)
	e.buf.SetLine(row, above)
	if curRow, curCol := e.cursor.RowCol(); curRow == row {
		e.cursor = e.cursor.SetRowCol(row-1, curCol)
	}
	e.fix()
}

// TransposeLineDown swaps the given row with the one below it; the cursor
// follows if it was on that row. Does nothing at the last row.
func (e *Editor) TransposeLineDown(row int) {
	row, _ = e.buf.ClampRowCol(row, 0)
	if row >= e.buf.Lines()-1 {
		return
	}
	below, _ := e.buf.Line(row + 1)
	current, _ := e.buf.Line(row)
	e.buf.SetLine(row, below)
	e.buf.SetLine(row+1, current)
	if curRow, curCol := e.cursor.RowCol(); curRow == row {
		e.cursor = e.cursor.SetRowCol(row+1, curCol)
	}
	e.fix()
}

// fixCursor clamps the cursor back into the buffer if it is invalid.
func (e *Editor) fixCursor() {
	e.cursor = e.cursor.SetRowCol(e.cursor.RowCol())
}

// fixNewline keeps an empty line at the end of the buffer, so the cursor can
// always be placed one past the final real line.
func (e *Editor) fixNewline() {
	lines := e.buf.Lines()
	if last, _ := e.buf.Line(lines - 1); last != "" {
		e.buf.InsertLine(lines, "")
	}
}

// fix repairs the editor's invariants: a valid cursor position and the empty
// line at the end of the buffer. It is idempotent, so every operation may
// call it on entry and exit.
func (e *Editor) fix() {
	e.fixCursor()
	e.fixNewline()
}

package buffer

import (
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// A RopeBuffer implements Buffer on top of a rope, which keeps structural
// edits cheap on very large files. It stores the whole document as one rope
// with '\n' delimiters between rows, and translates the line-indexed Buffer
// contract into byte offsets.
type RopeBuffer rope.Node

func NewRopeBuffer(contents string) *RopeBuffer {
	return (*RopeBuffer)(rope.New([]byte(contents)))
}

// Lines returns the number of lines in the buffer. This counts the number of
// newline ('\n') bytes in the rope, plus one: an empty rope is one empty
// line.
func (b *RopeBuffer) Lines() int {
	_rope := (*rope.Node)(b)
	return _rope.Count(0, _rope.Len(), []byte{'\n'}) + 1
}

// lineStartPos returns the first byte index of the given row (starting from
// zero). The returned index can equal the length of the rope, which means
// the row is the last, empty, line of the buffer.
func (b *RopeBuffer) lineStartPos(row int) int {
	_rope := (*rope.Node)(b)
	var pos int

	if row > 0 {
		_rope.IndexAllFunc(0, _rope.Len(), []byte{'\n'}, func(idx int) bool {
			row--
			pos = idx + 1 // idx+1 = start of line after delimiter
			return row <= 0
		})
	}

	return pos
}

// lineByteLen returns the number of bytes in the given row, excluding the
// trailing delimiter.
func (b *RopeBuffer) lineByteLen(row int) int {
	_rope := (*rope.Node)(b)
	start := b.lineStartPos(row)
	end := _rope.Len()
	_rope.IndexAllFunc(start, end, []byte{'\n'}, func(idx int) bool {
		end = idx
		return true // First delimiter after start ends the line
	})
	return end - start
}

func (b *RopeBuffer) Line(row int) (string, error) {
	if row < 0 || row >= b.Lines() {
		return "", ErrOutOfRange
	}
	start := b.lineStartPos(row)
	length := b.lineByteLen(row)
	if length == 0 {
		return "", nil
	}
	return string((*rope.Node)(b).Slice(start, start+length)), nil
}

func (b *RopeBuffer) LineLen(row int) int {
	if row < 0 {
		row = 0
	} else if last := b.Lines() - 1; row > last {
		row = last
	}
	line, _ := b.Line(row)
	return utf8.RuneCountInString(line)
}

func (b *RopeBuffer) SetLine(row int, text string) error {
	if row < 0 || row >= b.Lines() {
		return ErrOutOfRange
	}
	start := b.lineStartPos(row)
	if length := b.lineByteLen(row); length > 0 {
		(*rope.Node)(b).Remove(start, start+length)
	}
	if len(text) > 0 {
		(*rope.Node)(b).Insert(start, []byte(text))
	}
	return nil
}

func (b *RopeBuffer) InsertLine(row int, text string) error {
	lines := b.Lines()
	if row < 0 || row > lines {
		return ErrOutOfRange
	}
	_rope := (*rope.Node)(b)
	if row == lines { // Appending a final line adds a delimiter before it
		_rope.Insert(_rope.Len(), append([]byte{'\n'}, text...))
	} else {
		_rope.Insert(b.lineStartPos(row), append([]byte(text), '\n'))
	}
	return nil
}

func (b *RopeBuffer) RemoveLine(row int) error {
	lines := b.Lines()
	if row < 0 || row >= lines {
		return ErrOutOfRange
	}
	if lines == 1 {
		return ErrInvalidOperation
	}
	_rope := (*rope.Node)(b)
	start := b.lineStartPos(row)
	length := b.lineByteLen(row)
	if row < lines-1 {
		_rope.Remove(start, start+length+1) // Line and its trailing delimiter
	} else {
		_rope.Remove(start-1, _rope.Len()) // Last line takes the delimiter before it
	}
	return nil
}

func (b *RopeBuffer) Join(row int) error {
	lines := b.Lines()
	if row < 0 || row >= lines {
		return ErrOutOfRange
	}
	if row == lines-1 {
		return ErrInvalidOperation
	}
	pos := b.lineStartPos(row) + b.lineByteLen(row) // The delimiter after row
	(*rope.Node)(b).Remove(pos, pos+1)
	return nil
}

func (b *RopeBuffer) Split(row, col int) error {
	if row < 0 || row >= b.Lines() {
		return ErrOutOfRange
	}
	line, _ := b.Line(row)
	runes := []rune(line)
	if col < 0 {
		col = 0
	} else if col > len(runes) {
		col = len(runes)
	}
	pos := b.lineStartPos(row) + len(string(runes[:col]))
	(*rope.Node)(b).Insert(pos, []byte{'\n'})
	return nil
}

func (b *RopeBuffer) ClampRowCol(row, col int) (int, int) {
	if row < 0 {
		row = 0
	} else if last := b.Lines() - 1; row > last {
		row = last
	}

	if col < 0 {
		col = 0
	} else if runes := b.LineLen(row); col > runes {
		col = runes
	}

	return row, col
}

func (b *RopeBuffer) String() string {
	return string((*rope.Node)(b).Value())
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return (*rope.Node)(b).WriteTo(w)
}

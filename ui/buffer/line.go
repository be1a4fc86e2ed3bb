package buffer

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A LineBuffer stores its contents as a plain slice of lines. It is the
// default Buffer implementation: nearly every operation the editor performs
// is phrased in lines, so the obvious representation wins.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer splits contents on '\n' into a new LineBuffer. CR bytes from
// CRLF delimiters are dropped. Empty contents produce a single empty line.
func NewLineBuffer(contents string) *LineBuffer {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	return &LineBuffer{lines: strings.Split(contents, "\n")}
}

func (b *LineBuffer) Lines() int {
	return len(b.lines)
}

func (b *LineBuffer) Line(row int) (string, error) {
	if row < 0 || row >= len(b.lines) {
		return "", ErrOutOfRange
	}
	return b.lines[row], nil
}

func (b *LineBuffer) LineLen(row int) int {
	row, _ = b.ClampRowCol(row, 0)
	return utf8.RuneCountInString(b.lines[row])
}

func (b *LineBuffer) SetLine(row int, text string) error {
	if row < 0 || row >= len(b.lines) {
		return ErrOutOfRange
	}
	b.lines[row] = text
	return nil
}

func (b *LineBuffer) InsertLine(row int, text string) error {
	if row < 0 || row > len(b.lines) {
		return ErrOutOfRange
	}
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = text
	return nil
}

func (b *LineBuffer) RemoveLine(row int) error {
	if row < 0 || row >= len(b.lines) {
		return ErrOutOfRange
	}
	if len(b.lines) == 1 {
		return ErrInvalidOperation
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return nil
}

func (b *LineBuffer) Join(row int) error {
	if row < 0 || row >= len(b.lines) {
		return ErrOutOfRange
	}
	if row == len(b.lines)-1 {
		return ErrInvalidOperation
	}
	b.lines[row] += b.lines[row+1]
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return nil
}

func (b *LineBuffer) Split(row, col int) error {
	if row < 0 || row >= len(b.lines) {
		return ErrOutOfRange
	}
	runes := []rune(b.lines[row])
	if col < 0 {
		col = 0
	} else if col > len(runes) {
		col = len(runes)
	}
	before, after := string(runes[:col]), string(runes[col:])
	b.lines[row] = before
	return b.InsertLine(row+1, after)
}

func (b *LineBuffer) ClampRowCol(row, col int) (int, int) {
	if row < 0 {
		row = 0
	} else if last := len(b.lines) - 1; row > last {
		row = last
	}

	if col < 0 {
		col = 0
	} else if runes := utf8.RuneCountInString(b.lines[row]); col > runes {
		col = runes
	}

	return row, col
}

func (b *LineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

package buffer

import (
	"errors"
	"testing"
)

func TestRopeBufferLines(t *testing.T) {
	var buf Buffer = NewRopeBuffer("line0\nline1\n\nline3\n")

	if buf.Lines() != 5 {
		t.Errorf("Expected 5 lines, got %v", buf.Lines())
	}

	if line, _ := buf.Line(2); line != "" {
		t.Errorf("Expected line 2 to be empty, got %#v", line)
	}

	if line, _ := buf.Line(4); line != "" {
		t.Errorf("Expected the final line to be empty, got %#v", line)
	}

	if _, err := buf.Line(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange reading line 5, got %v", err)
	}
}

func TestRopeBufferEmpty(t *testing.T) {
	var buf Buffer = NewRopeBuffer("")

	if buf.Lines() != 1 {
		t.Errorf("An empty buffer must hold one line, got %v", buf.Lines())
	}

	if err := buf.RemoveLine(0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected removing the sole line to be rejected, got %v", err)
	}

	if err := buf.InsertLine(1, "x"); err != nil {
		t.Fatalf("InsertLine append failed: %v", err)
	}
	if str := buf.String(); str != "\nx" {
		t.Errorf("After append, got %#v", str)
	}
}

func TestRopeBufferClampRowCol(t *testing.T) {
	var buf Buffer = NewRopeBuffer("this\nis (は)\n\tsome\ntext\n")

	row, col := buf.ClampRowCol(15, 5)
	if row != 4 || col != 0 {
		t.Errorf("Expected to clamp to 4,0 got %v,%v", row, col)
	}

	if len := buf.LineLen(1); len != 6 { // Columns count runes, not bytes
		t.Errorf("Expected 6 runes in line 1, found %v", len)
	}

	row, col = buf.ClampRowCol(1, 100)
	if row != 1 || col != 6 {
		t.Errorf("Expected to clamp to 1,6 got %v,%v", row, col)
	}
}

// Both Buffer implementations must expose identical semantics; any structural
// operation applied to both must leave them with the same contents.
func TestBufferImplementationsAgree(t *testing.T) {
	const contents = "alpha\nbeta\ngamma"
	line := Buffer(NewLineBuffer(contents))
	rope := Buffer(NewRopeBuffer(contents))

	steps := []struct {
		name string
		op   func(Buffer) error
	}{
		{"SetLine", func(b Buffer) error { return b.SetLine(1, "BETA") }},
		{"InsertLine middle", func(b Buffer) error { return b.InsertLine(1, "inserted") }},
		{"InsertLine front", func(b Buffer) error { return b.InsertLine(0, "first") }},
		{"InsertLine append", func(b Buffer) error { return b.InsertLine(b.Lines(), "last") }},
		{"Split", func(b Buffer) error { return b.Split(2, 3) }},
		{"Join", func(b Buffer) error { return b.Join(2) }},
		{"RemoveLine middle", func(b Buffer) error { return b.RemoveLine(1) }},
		{"RemoveLine last", func(b Buffer) error { return b.RemoveLine(b.Lines() - 1) }},
		{"SetLine empty", func(b Buffer) error { return b.SetLine(0, "") }},
	}

	for _, step := range steps {
		lineErr := step.op(line)
		ropeErr := step.op(rope)
		if (lineErr == nil) != (ropeErr == nil) {
			t.Fatalf("%v: line buffer error %v, rope buffer error %v", step.name, lineErr, ropeErr)
		}
		if line.String() != rope.String() {
			t.Fatalf("%v: line buffer holds %#v, rope buffer holds %#v",
				step.name, line.String(), rope.String())
		}
		if line.Lines() != rope.Lines() {
			t.Fatalf("%v: line buffer has %v lines, rope buffer has %v",
				step.name, line.Lines(), rope.Lines())
		}
	}
}

// The editing engine must behave the same over either backing store.
func TestEditorOverRopeBuffer(t *testing.T) {
	overLine := NewEditor(NewLineBuffer("hello\nworld"), nil)
	overRope := NewEditor(NewRopeBuffer("hello\nworld"), nil)

	edit := func(e *Editor) {
		e.SetCursorRowCol(0, 5)
		e.InsertRune('!')
		e.InsertRune('\n')
		e.InsertString("middle")
		e.SetCursorRowCol(0, 0)
		e.DeleteForward()
		e.Cut()
		e.Paste()
	}
	edit(overLine)
	edit(overRope)

	if overLine.Contents() != overRope.Contents() {
		t.Errorf("Backing stores disagree: %#v vs %#v",
			overLine.Contents(), overRope.Contents())
	}
	lr, lc := overLine.CursorRowCol()
	rr, rc := overRope.CursorRowCol()
	if lr != rr || lc != rc {
		t.Errorf("Backing stores place the cursor at %v,%v vs %v,%v", lr, lc, rr, rc)
	}
}

package buffer

import (
	"errors"
	"testing"
)

func TestLineBufferSplitContents(t *testing.T) {
	var buf Buffer = NewLineBuffer("line0\nline1\n\nline3\n")
	//line0
	//line1
	//
	//line3
	//

	if buf.Lines() != 5 {
		t.Errorf("Expected 5 lines, got %v", buf.Lines())
	}

	if line, _ := buf.Line(2); line != "" {
		t.Errorf("Expected line 2 to be empty, got %#v", line)
	}

	if line, _ := buf.Line(3); line != "line3" {
		t.Errorf("Expected \"line3\", got %#v", line)
	}

	if _, err := buf.Line(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange reading line 5, got %v", err)
	}
}

func TestLineBufferCRLF(t *testing.T) {
	var buf Buffer = NewLineBuffer("with\r\ncarriage")

	if buf.Lines() != 2 {
		t.Errorf("Expected CRLF delimiters to split lines, got %v lines", buf.Lines())
	}

	if line, _ := buf.Line(0); line != "with" {
		t.Errorf("Expected CR to be dropped, got %#v", line)
	}
}

func TestLineBufferEmpty(t *testing.T) {
	var buf Buffer = NewLineBuffer("")

	if buf.Lines() != 1 {
		t.Errorf("An empty buffer must hold one line, got %v", buf.Lines())
	}

	if err := buf.RemoveLine(0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected removing the sole line to be rejected, got %v", err)
	}
}

func TestLineBufferStructuralOps(t *testing.T) {
	var buf Buffer = NewLineBuffer("ab\ncd")

	if err := buf.Split(0, 1); err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if str := buf.String(); str != "a\nb\ncd" {
		t.Errorf("After split, got %#v", str)
	}

	if err := buf.Join(1); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if str := buf.String(); str != "a\nbcd" {
		t.Errorf("After join, got %#v", str)
	}

	if err := buf.Join(1); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected joining at the last line to be rejected, got %v", err)
	}

	if err := buf.InsertLine(2, "end"); err != nil {
		t.Fatalf("InsertLine append failed: %v", err)
	}
	if str := buf.String(); str != "a\nbcd\nend" {
		t.Errorf("After append, got %#v", str)
	}

	if err := buf.RemoveLine(1); err != nil {
		t.Fatalf("RemoveLine failed: %v", err)
	}
	if str := buf.String(); str != "a\nend" {
		t.Errorf("After remove, got %#v", str)
	}
}

func TestLineBufferClampRowCol(t *testing.T) {
	var buf Buffer = NewLineBuffer("this\nis (は)\n\tsome\ntext\n")

	row, col := buf.ClampRowCol(15, 5)
	if row != 4 || col != 0 {
		t.Errorf("Expected to clamp to 4,0 got %v,%v", row, col)
	}

	row, col = buf.ClampRowCol(-1, -1)
	if row != 0 || col != 0 {
		t.Errorf("Expected to clamp to 0,0 got %v,%v", row, col)
	}

	if len := buf.LineLen(1); len != 6 { // "is" in English and in japanese
		t.Errorf("Expected 6 runes in line 1, found %v", len)
	}

	row, col = buf.ClampRowCol(1, 100)
	if row != 1 || col != 6 {
		t.Errorf("Expected to clamp to 1,6 got %v,%v", row, col)
	}
}

func TestLineBufferSetLine(t *testing.T) {
	var buf Buffer = NewLineBuffer("one\ntwo")

	if err := buf.SetLine(1, "TWO"); err != nil {
		t.Fatalf("SetLine failed: %v", err)
	}
	if str := buf.String(); str != "one\nTWO" {
		t.Errorf("Got %#v", str)
	}

	if err := buf.SetLine(2, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

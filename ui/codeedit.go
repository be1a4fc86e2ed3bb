package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adam-mcdaniel/editor/ui/buffer"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// CodeEdit is a component for line-based code editing. It owns an Editor for
// the editing semantics, asks a Highlighter for styled spans per visible
// line, and is the only piece that touches the screen directly.
type CodeEdit struct {
	Editor      *buffer.Editor
	Highlighter buffer.Highlighter
	Colors      *buffer.Colorscheme
	LineNumbers bool   // Whether to render line numbers (and therefore the column)
	Disabled    bool   // A disabled editor refuses focus and edit events; navigation still works
	Dirty       bool   // Whether the buffer has been edited since the last save
	FilePath    string // Will be empty if the buffer has no file association

	// LastError holds the most recent save failure, for the host to report.
	// Save failures never alter the in-memory buffer.
	LastError error

	screen   *tcell.Screen // Our own reference to the screen, for cursor purposes
	viewport *Viewport
	scrollx  int // Horizontal rune offset of the view

	baseComponent
}

// NewCodeEdit wraps buf in an editing component. A nil clip leaves the
// editor on its internal clipboard slot; a nil theme uses the default.
func NewCodeEdit(screen *tcell.Screen, filePath string, buf buffer.Buffer, clip buffer.Clipboard, theme *Theme) *CodeEdit {
	return &CodeEdit{
		Editor:        buffer.NewEditor(buf, clip),
		Highlighter:   buffer.NewWordHighlighter(),
		Colors:        &buffer.DefaultColorscheme,
		LineNumbers:   true,
		FilePath:      filePath,
		screen:        screen,
		viewport:      NewViewport(),
		baseComponent: baseComponent{theme: theme},
	}
}

// CanFocus reports whether the component accepts focus. A disabled editor
// refuses it.
func (c *CodeEdit) CanFocus() bool {
	return !c.Disabled
}

// SetFocused sets whether the CodeEdit is focused. When focused, the
// terminal cursor is shown at the editing position.
func (c *CodeEdit) SetFocused(v bool) {
	c.focused = v && !c.Disabled
	if c.focused {
		c.updateCursorVisibility()
	} else {
		(*c.screen).HideCursor()
	}
}

func (c *CodeEdit) SetSize(width, height int) {
	if width != c.width || height != c.height {
		c.viewport.Invalidate()
	}
	c.baseComponent.SetSize(width, height)
}

// Save writes the buffer to FilePath, overwriting it wholesale. A failed
// save is recorded in LastError and changes nothing in memory.
func (c *CodeEdit) Save() error {
	if c.FilePath == "" {
		return nil
	}
	if err := buffer.Save(c.FilePath, c.Editor.Buffer()); err != nil {
		c.LastError = err
		return err
	}
	c.Dirty = false
	return nil
}

// getColumnWidth returns the width of the line numbers column if it is
// present.
func (c *CodeEdit) getColumnWidth() int {
	var columnWidth int
	if c.LineNumbers {
		// Max count of line number digits, minimum width of 3
		columnWidth = Max(3, 1+len(strconv.Itoa(c.Editor.Buffer().Lines())))
	}
	return columnWidth
}

// ScrollToCursor moves the view if the cursor is outside it.
func (c *CodeEdit) ScrollToCursor() {
	row, col := c.Editor.CursorRowCol()
	c.viewport.ScrollTo(row)

	width := Max(1, c.width-c.getColumnWidth()-1)
	if col >= c.scrollx+width { // The cursor is right of view
		c.scrollx = col - width + 1
	} else if col < c.scrollx { // The cursor is left of view
		c.scrollx = col
	}
}

// updateCursorVisibility places the terminal's cursor at the editing
// position while the CodeEdit is focused and not selecting.
func (c *CodeEdit) updateCursorVisibility() {
	if c.focused && !c.Editor.Selecting() {
		row, col := c.Editor.CursorRowCol()
		(*c.screen).ShowCursor(c.x+c.getColumnWidth()+col-c.scrollx, c.y+row-c.viewport.Scroll())
	}
}

// inRegion reports whether the position is covered by the selection region.
func inRegion(r buffer.Region, row, col int) bool {
	startRow, startCol := r.Start.RowCol()
	endRow, endCol := r.End.RowCol()
	if row < startRow || row > endRow {
		return false
	}
	if row == startRow && col < startCol {
		return false
	}
	if row == endRow && col >= endCol {
		return false
	}
	return true
}

// Draw renders the CodeEdit component.
func (c *CodeEdit) Draw(s tcell.Screen) {
	columnWidth := c.getColumnWidth()
	buf := c.Editor.Buffer()
	bufferLines := buf.Lines()
	lastLineEmpty := buf.LineLen(bufferLines-1) == 0

	c.viewport.Recompute(c.width-columnWidth, c.height, bufferLines, lastLineEmpty)

	defaultStyle := c.theme.GetOrDefault("CodeEdit")
	columnStyle := c.theme.GetOrDefault("CodeEditColumn")
	selectedStyle := c.theme.GetOrDefault("CodeEditSelected")

	region, selecting := c.Editor.ResolveRange()

	start, end := c.viewport.VisibleRows()
	for row := start; row < end; row++ {
		y := c.y + row - start

		lineNumStr := "" // Only set for rows within the buffer
		if row < bufferLines {
			lineNumStr = strconv.Itoa(row + 1)
		}
		if c.LineNumbers {
			columnStr := fmt.Sprintf("%s%s│", strings.Repeat(" ", columnWidth-len(lineNumStr)-1), lineNumStr)
			DrawStr(s, c.x, y, columnStr, columnStyle)
		}

		if row >= bufferLines {
			continue // The ghost row has no content
		}
		line, err := buf.Line(row)
		if err != nil {
			continue
		}

		drawX := c.x + columnWidth
		maxX := c.x + columnWidth + c.viewport.ContentWidth()
		col := 0 // Rune index within the line

	spans:
		for _, span := range c.Highlighter.Highlight(line) {
			style := c.Colors.GetStyle(span.Syntax)
			for _, r := range span.Text {
				if col < c.scrollx {
					col++
					continue
				}
				if drawX >= maxX {
					break spans
				}
				st := style
				if selecting && inRegion(region, row, col) {
					st = selectedStyle
				}
				s.SetContent(drawX, y, r, nil, st)
				drawX += runewidth.RuneWidth(r)
				col++
			}
		}

		for ; drawX < maxX; drawX++ { // Clear the rest of the row
			s.SetContent(drawX, y, ' ', nil, defaultStyle)
		}
	}

	if c.viewport.HasScrollbar() {
		DrawScrollbar(s, c.x+c.width-1, c.y, c.height, c.viewport.Scroll(), c.viewport.Rows(), c.theme.GetOrDefault("Scrollbar"))
	}

	c.updateCursorVisibility()
}

// HandleEvent allows the CodeEdit to handle `event` if it chooses, returning
// whether it was handled. Edit-producing events are ignored while Disabled.
func (c *CodeEdit) HandleEvent(event tcell.Event) bool {
	ed := c.Editor

	switch ev := event.(type) {
	case *tcell.EventKey:
		shifting := false // Whether this event extends the selection
		edited := false   // Whether this event changed the buffer

		switch ev.Key() {
		// Cursor movement
		case tcell.KeyUp:
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				if c.Disabled {
					return false
				}
				row, _ := ed.CursorRowCol()
				ed.TransposeLineUp(row)
				edited = true
			} else if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				ed.MoveUp()
				shifting = true
			} else {
				ed.MoveUp()
			}
		case tcell.KeyDown:
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				if c.Disabled {
					return false
				}
				row, _ := ed.CursorRowCol()
				ed.TransposeLineDown(row)
				edited = true
			} else if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				ed.MoveDown()
				shifting = true
			} else {
				ed.MoveDown()
			}
		case tcell.KeyLeft:
			if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				shifting = true
			}
			ed.MoveLeft()
		case tcell.KeyRight:
			if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				shifting = true
			}
			ed.MoveRight()
		case tcell.KeyHome:
			ed.MoveHome()
		case tcell.KeyEnd:
			ed.MoveEnd()
		case tcell.KeyPgUp:
			if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				shifting = true
			}
			ed.PageUp()
		case tcell.KeyPgDn:
			if ev.Modifiers()&tcell.ModShift != 0 {
				ed.StartOrExtendSelection()
				shifting = true
			}
			ed.PageDown()

		// Deleting
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if c.Disabled {
				return false
			}
			ed.Backspace()
			edited = true
		case tcell.KeyDelete:
			if c.Disabled {
				return false
			}
			ed.DeleteForward()
			edited = true

		// Clipboard
		case tcell.KeyCtrlX:
			if c.Disabled {
				return false
			}
			ed.Cut()
			edited = true
		case tcell.KeyCtrlF:
			ed.Copy()
		case tcell.KeyCtrlV:
			if c.Disabled {
				return false
			}
			ed.Paste()
			edited = true

		// Line operations
		case tcell.KeyCtrlK:
			if c.Disabled {
				return false
			}
			if ed.Selecting() {
				ed.ToggleCommentSelection()
			} else {
				row, _ := ed.CursorRowCol()
				ed.ToggleCommentLine(row)
			}
			edited = true
			shifting = true // Keep the selection for repeated toggles
		case tcell.KeyCtrlD:
			if c.Disabled {
				return false
			}
			ed.DuplicateLineDown()
			edited = true

		case tcell.KeyCtrlS:
			c.Save()

		// Inserting
		case tcell.KeyTab:
			if c.Disabled {
				return false
			}
			ed.InsertRune('\t')
			edited = true
		case tcell.KeyEnter:
			if c.Disabled {
				return false
			}
			ed.InsertRune('\n')
			edited = true
		case tcell.KeyRune:
			if c.Disabled {
				return false
			}
			ed.InsertRune(ev.Rune())
			edited = true
		default:
			return false
		}

		if !shifting {
			ed.ClearSelection()
		}
		if edited {
			c.Dirty = true
			c.viewport.Invalidate()
		}
		c.ScrollToCursor()
		c.updateCursorVisibility()
		return true

	case *tcell.EventMouse:
		// The wheel moves the view without moving the cursor
		if ev.Buttons()&tcell.WheelUp != 0 && c.viewport.CanScrollUp() {
			c.viewport.ScrollBy(-5)
			return true
		}
		if ev.Buttons()&tcell.WheelDown != 0 && c.viewport.CanScrollDown() {
			c.viewport.ScrollBy(5)
			return true
		}
	}
	return false
}

package ui

import "github.com/gdamore/tcell/v2"

// DrawStr will render each character of a string at `x` and `y`.
func DrawStr(s tcell.Screen, x, y int, str string, style tcell.Style) {
	runes := []rune(str)
	for idx := 0; idx < len(runes); idx++ {
		s.SetContent(x+idx, y, runes[idx], nil, style)
	}
}

// DrawScrollbar renders a vertical scrollbar in the single column at `x`,
// with the thumb placed proportionally to scroll within total rows.
func DrawScrollbar(s tcell.Screen, x, y, height, scroll, total int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		s.SetContent(x, row, '│', nil, style)
	}
	if total <= height {
		return
	}
	thumb := y + scroll*(height-1)/(total-height)
	s.SetContent(x, Clamp(thumb, y, y+height-1), '█', nil, style)
}

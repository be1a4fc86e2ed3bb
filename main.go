package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adam-mcdaniel/editor/ui"
	"github.com/adam-mcdaniel/editor/ui/buffer"
	"github.com/gdamore/tcell/v2"
)

var (
	useRope  = flag.Bool("rope", false, "back the buffer with a rope instead of a line slice")
	comment  = flag.String("comment", "// ", "comment prefix toggled by Ctrl-K")
	tabSize  = flag.Int("tabsize", 4, "number of spaces a tab inserts")
	readOnly = flag.Bool("readonly", false, "open the file for viewing only")
)

func main() {
	flag.Parse()

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	// A missing or unreadable file opens as an empty buffer
	var buf buffer.Buffer = buffer.Open(path)
	if *useRope {
		buf = buffer.NewRopeBuffer(buf.String())
	}

	s, e := tcell.NewScreen()
	if e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}
	if e := s.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}
	defer s.Fini() // Useful for handling panics
	s.EnableMouse()

	clip, _ := NewClipboard() // Falls back to the internal slot

	theme := ui.DefaultTheme
	edit := ui.NewCodeEdit(&s, path, buf, clip, &theme)
	edit.Editor.CommentPrefix = *comment
	edit.Editor.TabSize = *tabSize
	edit.Disabled = *readOnly

	sizex, sizey := s.Size()
	edit.SetPos(0, 0)
	edit.SetSize(sizex, sizey)
	if edit.CanFocus() {
		edit.SetFocused(true)
	}

	for {
		s.Clear()
		edit.Draw(s)
		if err := edit.LastError; err != nil {
			ui.DrawStr(s, 0, sizey-1, err.Error(), theme.GetOrDefault("Normal"))
		}
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			sizex, sizey = s.Size()
			edit.SetSize(sizex, sizey)
			s.Sync() // Redraw everything
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return
			}
			edit.HandleEvent(ev)
		case *tcell.EventMouse:
			edit.HandleEvent(ev)
		}
	}
}

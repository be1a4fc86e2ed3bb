package buffer

// A Clipboard holds one slot of cut or copied text, line or multi-line.
// Last write wins; there is no history. Failures must not crash the editor,
// so callers ignore clipboard errors.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// SlotClipboard is the in-memory Clipboard used when no system clipboard is
// wired in. Its lifetime is the editor's lifetime.
type SlotClipboard struct {
	text string
}

func (c *SlotClipboard) ReadText() (string, error) {
	return c.text, nil
}

func (c *SlotClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

package main

import (
	"github.com/adam-mcdaniel/editor/ui/buffer"
	"github.com/zyedidia/clipboard"
)

// NewClipboard initializes the system clipboard and returns it as the
// editor's clipboard slot. If no system clipboard is available, an
// in-memory slot is used instead; the error is returned for reporting but
// is not fatal.
func NewClipboard() (buffer.Clipboard, error) {
	if err := clipboard.Initialize(); err != nil {
		return &buffer.SlotClipboard{}, err
	}
	return systemClipboard{}, nil
}

// systemClipboard adapts the clipboard package to the editor's single-slot
// contract.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll("clipboard")
}

func (systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text, "clipboard")
}

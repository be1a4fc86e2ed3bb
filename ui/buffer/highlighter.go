package buffer

import "unicode"

// A Span is a contiguous run of characters tagged with one style.
type Span struct {
	Text   string
	Syntax Syntax
}

// A Highlighter turns one line of text into styled spans. Implementations
// are pure: no state survives between calls, and spans are produced fresh
// per render rather than cached across edits. The editing and viewport
// components never depend on a concrete implementation.
type Highlighter interface {
	Highlight(line string) []Span
}

// PlainHighlighter tags the whole line as Default.
type PlainHighlighter struct{}

func (PlainHighlighter) Highlight(line string) []Span {
	if line == "" {
		return nil
	}
	return []Span{{Text: line, Syntax: Default}}
}

// A WordHighlighter lexes a line in a single left-to-right scan: whole words
// from the keyword and type tables, string literals between double quotes,
// digits, and a fixed symbol set. Everything else is plain.
type WordHighlighter struct {
	Keywords []string
	Types    []string
	Symbols  string
}

// NewWordHighlighter returns a WordHighlighter over the package's default
// keyword, type and symbol tables.
func NewWordHighlighter() *WordHighlighter {
	return &WordHighlighter{
		Keywords: Keywords,
		Types:    Types,
		Symbols:  Symbols,
	}
}

// spanBuilder coalesces per-character emissions into runs of one Syntax.
type spanBuilder struct {
	spans []Span
}

func (b *spanBuilder) append(text string, s Syntax) {
	if text == "" {
		return
	}
	if n := len(b.spans); n > 0 && b.spans[n-1].Syntax == s {
		b.spans[n-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Text: text, Syntax: s})
}

// matchWord reports whether any word of the table starts at position i of
// runes, as a whole word: the preceding character (if any) must be
// non-alphabetic, and so must the character after the word. This keeps
// short keywords from partially matching inside identifiers ("in" never
// matches inside "int").
func matchWord(runes []rune, i int, table []string) (string, bool) {
	if i > 0 && unicode.IsLetter(runes[i-1]) {
		return "", false
	}
	for _, word := range table {
		w := []rune(word)
		if i+len(w) >= len(runes) { // The rune after the word must exist (sentinel at worst)
			continue
		}
		if unicode.IsLetter(runes[i+len(w)]) {
			continue
		}
		match := true
		for j := range w {
			if runes[i+j] != w[j] {
				match = false
				break
			}
		}
		if match {
			return word, true
		}
	}
	return "", false
}

// Highlight lexes one line. A sentinel space is appended internally so
// whole-word checks at the end of the line have a following character to
// inspect; the sentinel itself is not emitted.
func (h *WordHighlighter) Highlight(line string) []Span {
	runes := append([]rune(line), ' ') // Sentinel
	var b spanBuilder
	var inString bool
	var skip int

	for i := 0; i < len(runes)-1; i++ {
		if skip > 0 {
			skip--
			continue
		}

		if word, ok := matchWord(runes, i, h.Keywords); ok {
			b.append(word, Keyword)
			skip = len([]rune(word)) - 1
			continue
		}
		if word, ok := matchWord(runes, i, h.Types); ok {
			b.append(word, Type)
			skip = len([]rune(word)) - 1
			continue
		}

		ch := runes[i]
		switch {
		case ch == '"' && i > 0 && runes[i-1] == '\\':
			// An escaped quote is styled as a string but does not end it
			b.append(`"`, String)
		case ch == '"':
			inString = !inString
			b.append(`"`, String)
		case unicode.IsDigit(ch):
			b.append(string(ch), Number)
		case inString:
			b.append(string(ch), String)
		case containsRune(h.Symbols, ch):
			b.append(string(ch), Symbol)
		default:
			b.append(string(ch), Default)
		}
	}

	return b.spans
}

func containsRune(s string, ch rune) bool {
	for _, r := range s {
		if r == ch {
			return true
		}
	}
	return false
}

package buffer

import "github.com/gdamore/tcell/v2"

// Syntax is the closed set of style tags the highlighter can attach to a
// span of text.
type Syntax uint8

const (
	Default Syntax = iota
	Keyword
	Type
	Number
	String
	Symbol
)

// Keywords and Types are the fixed identifier tables the word highlighter
// matches, keywords first. They cover a handful of popular languages rather
// than any one precisely; this is a heuristic lexer, not a parser.
var Keywords = []string{
	"class", "struct", "use", "import", "trait", "type", "impl", "pub", "let", "if",
	"while", "for", "else", "mut", "in", "match", "continue", "break", "fn", "def",
	"lambda", "return", "new", "data", "begin", "end", "then", "is", "enum", "do",
	"var", "static", "public", "private", "where", "include", "define", "pragma",
	"const",
}

var Types = []string{
	"Self", "Vec", "i32", "i64", "f32", "f64", "int", "double", "float", "char", "bool",
	"self", "String", "str", "true", "false", "True", "False",
}

// Symbols is the fixed set of punctuation characters tagged as Symbol.
const Symbols = ";,:?{}()!"

// A Colorscheme maps style tags to terminal styles. It is passed to the
// render side at construction; the highlighter itself never touches styles.
type Colorscheme map[Syntax]tcell.Style

// GetStyle returns the tcell.Style for the given Syntax. If the Syntax is
// not in the map, the Default entry is used, or tcell.StyleDefault if even
// that is missing.
func (c *Colorscheme) GetStyle(s Syntax) tcell.Style {
	if c != nil {
		if val, ok := (*c)[s]; ok {
			return val
		} else if s != Default {
			if val, ok := (*c)[Default]; ok {
				return val
			}
		}
	}

	return tcell.StyleDefault
}

// DefaultColorscheme uses only the first 16 colors present in most colored
// terminals.
var DefaultColorscheme = Colorscheme{
	Default: tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	Keyword: tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	Type:    tcell.Style{}.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
	Number:  tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	String:  tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	Symbol:  tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
}

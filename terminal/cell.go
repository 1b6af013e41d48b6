package terminal

// Default dimensions when the window size cannot be queried
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

// Cell represents a single terminal cell
// Rune 0 marks the second column of a double-width glyph drawn in the cell before it
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// EmptyCell is a space on the terminal's default colors
var EmptyCell = Cell{Rune: ' '}

// NewCell returns a cell with an unset background
func NewCell(r rune, fg Color) Cell {
	return Cell{Rune: r, Fg: fg}
}

// IsContinuation reports whether the cell is covered by a wide glyph to its left
func (c Cell) IsContinuation() bool {
	return c.Rune == 0
}

package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Background gives drawn cells without a background color its own
type Background struct {
	extent
	Color terminal.Color
	child Widget
}

// WithBackground wraps child in a Background
func WithBackground(child Widget, c terminal.Color) *Background {
	return &Background{Color: c, child: child}
}

func (b *Background) NaturalSize() (int, int) {
	return b.child.NaturalSize()
}

func (b *Background) AssignSize(w, h int) {
	b.assign(w, h)
	b.child.AssignSize(w, h)
}

func (b *Background) CellAt(x, y int) (terminal.Cell, bool) {
	if !b.contains(x, y) {
		return none()
	}
	c, ok := b.child.CellAt(x, y)
	if !ok {
		return none()
	}
	if c.Bg.IsNone() {
		c.Bg = b.Color
	}
	return c, true
}

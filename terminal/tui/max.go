package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Max caps the natural and assigned size of its child
type Max struct {
	extent
	W, H  int
	child Widget
}

// Capped wraps child in a Max
func Capped(child Widget, w, h int) *Max {
	return &Max{W: w, H: h, child: child}
}

func (m *Max) NaturalSize() (int, int) {
	cw, ch := m.child.NaturalSize()
	return min(cw, m.W), min(ch, m.H)
}

func (m *Max) AssignSize(w, h int) {
	m.assign(w, h)
	m.child.AssignSize(min(w, m.W), min(h, m.H))
}

func (m *Max) CellAt(x, y int) (terminal.Cell, bool) {
	if !m.contains(x, y) || x >= m.W || y >= m.H {
		return none()
	}
	return m.child.CellAt(x, y)
}

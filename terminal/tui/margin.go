package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Margin surrounds its child with DX blank columns left and right and DY
// blank rows above and below
type Margin struct {
	extent
	DX, DY int
	child  Widget
}

// Margined wraps child in a margin; negative thickness is treated as zero
func Margined(child Widget, dx, dy int) *Margin {
	return &Margin{DX: max(dx, 0), DY: max(dy, 0), child: child}
}

func (m *Margin) NaturalSize() (int, int) {
	w, h := m.child.NaturalSize()
	return w + 2*m.DX, h + 2*m.DY
}

func (m *Margin) AssignSize(w, h int) {
	m.assign(w, h)
	m.child.AssignSize(w-2*m.DX, h-2*m.DY)
}

func (m *Margin) CellAt(x, y int) (terminal.Cell, bool) {
	if !m.contains(x, y) {
		return none()
	}
	w, h := m.NaturalSize()
	if x >= w || y >= h {
		return none()
	}
	if x < m.DX || x >= w-m.DX || y < m.DY || y >= h-m.DY {
		return space()
	}
	return orSpace(m.child.CellAt(x-m.DX, y-m.DY))
}

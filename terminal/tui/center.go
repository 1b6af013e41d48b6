package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Center places its child in the middle of the assigned area. Odd slack
// leaves the extra column or row on the right and bottom.
type Center struct {
	extent
	child  Widget
	cw, ch int
}

// Centered wraps child in a Center
func Centered(child Widget) *Center {
	c := &Center{child: child}
	c.cw, c.ch = child.NaturalSize()
	return c
}

// NaturalSize is the larger of the child's natural size and the assigned size
func (c *Center) NaturalSize() (int, int) {
	c.cw, c.ch = c.child.NaturalSize()
	w, h := c.assigned()
	return max(c.cw, w), max(c.ch, h)
}

func (c *Center) AssignSize(w, h int) {
	c.assign(w, h)
	c.child.AssignSize(w, h)
	// Child layout may depend on the size just granted
	c.cw, c.ch = c.child.NaturalSize()
}

func (c *Center) CellAt(x, y int) (terminal.Cell, bool) {
	if !c.contains(x, y) {
		return none()
	}
	w, h := c.assigned()
	if !c.set {
		w, h = c.cw, c.ch
		if x >= w || y >= h {
			return none()
		}
	}
	ox := max(w-c.cw, 0) / 2
	oy := max(h-c.ch, 0) / 2
	return orSpace(c.child.CellAt(x-ox, y-oy))
}

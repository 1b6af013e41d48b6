package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Spacer stretches to whatever it is assigned without moving its child.
// Area the child does not draw is blank.
type Spacer struct {
	extent
	MinW, MinH int
	child      Widget
}

// Stretched wraps child in a Spacer with a minimum natural size
func Stretched(child Widget, minW, minH int) *Spacer {
	return &Spacer{MinW: minW, MinH: minH, child: child}
}

func (s *Spacer) NaturalSize() (int, int) {
	cw, ch := s.child.NaturalSize()
	w, h := s.assigned()
	return max(cw, w, s.MinW), max(ch, h, s.MinH)
}

func (s *Spacer) AssignSize(w, h int) {
	s.assign(w, h)
	s.child.AssignSize(w, h)
}

func (s *Spacer) CellAt(x, y int) (terminal.Cell, bool) {
	if !s.contains(x, y) {
		return none()
	}
	w, h := s.NaturalSize()
	if x >= w || y >= h {
		return none()
	}
	return orSpace(s.child.CellAt(x, y))
}

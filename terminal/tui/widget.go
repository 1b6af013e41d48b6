package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Widget is a node of the layout tree. The set of node kinds is closed to this package.
type Widget interface {
	// NaturalSize returns the size the widget occupies unconstrained.
	// It may run lazy layout; results are cached until invalidated.
	NaturalSize() (w, h int)
	// AssignSize grants the widget the rectangle it will be rendered into
	AssignSize(w, h int)
	// CellAt returns the cell at x,y relative to the widget origin.
	// ok is false when nothing is drawn there, the cell is then EmptyCell.
	CellAt(x, y int) (c terminal.Cell, ok bool)

	widget()
}

// extent records the last assigned size and clips queries to it.
// Embedded by every node kind, it also carries the Widget marker.
type extent struct {
	w, h int
	set  bool
}

func (extent) widget() {}

func (e *extent) assign(w, h int) {
	e.w, e.h, e.set = w, h, true
}

// contains reports whether x,y lies in the assigned rectangle; before any
// assignment only negative coordinates are rejected
func (e *extent) contains(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	if !e.set {
		return true
	}
	return x < e.w && y < e.h
}

// assigned returns the assigned size, 0x0 before any assignment
func (e *extent) assigned() (int, int) {
	if !e.set {
		return 0, 0
	}
	return e.w, e.h
}

func none() (terminal.Cell, bool) {
	return terminal.EmptyCell, false
}

func space() (terminal.Cell, bool) {
	return terminal.EmptyCell, true
}

// orSpace turns a missing child cell into a drawn space
func orSpace(c terminal.Cell, ok bool) (terminal.Cell, bool) {
	if !ok {
		return space()
	}
	return c, true
}

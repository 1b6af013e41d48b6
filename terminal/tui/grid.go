package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Grids split the assigned extent along their axis evenly by integer
// division: with N children each gets total/N and the remainder is left
// blank after the last child. Once assigned, a child that reports more than
// its share is clipped to the share so it cannot cover its siblings.

// GridH lays children out left to right
type GridH struct {
	extent
	children []Widget
}

// NewGridH creates a horizontal grid
func NewGridH(children ...Widget) *GridH {
	return &GridH{children: children}
}

// Add appends a child and returns the grid for chaining
func (g *GridH) Add(child Widget) *GridH {
	g.children = append(g.children, child)
	return g
}

// Len returns the number of children
func (g *GridH) Len() int {
	return len(g.children)
}

func (g *GridH) NaturalSize() (int, int) {
	w, h := 0, 0
	for _, c := range g.children {
		cw, ch := c.NaturalSize()
		w += g.span(cw)
		h = max(h, ch)
	}
	return w, h
}

// span is the width a child with natural width cw occupies
func (g *GridH) span(cw int) int {
	cw = max(cw, 0)
	if w, _ := g.assigned(); g.set && len(g.children) > 0 {
		cw = min(cw, max(w, 0)/len(g.children))
	}
	return cw
}

func (g *GridH) AssignSize(w, h int) {
	g.assign(w, h)
	if len(g.children) == 0 {
		return
	}
	share := w / len(g.children)
	for _, c := range g.children {
		c.AssignSize(share, h)
	}
}

func (g *GridH) CellAt(x, y int) (terminal.Cell, bool) {
	if !g.contains(x, y) {
		return none()
	}
	for _, c := range g.children {
		cw, _ := c.NaturalSize()
		cw = g.span(cw)
		if x < cw {
			return c.CellAt(x, y)
		}
		x -= cw
	}
	return none()
}

// GridV lays children out top to bottom
type GridV struct {
	extent
	children []Widget
}

// NewGridV creates a vertical grid
func NewGridV(children ...Widget) *GridV {
	return &GridV{children: children}
}

// Add appends a child and returns the grid for chaining
func (g *GridV) Add(child Widget) *GridV {
	g.children = append(g.children, child)
	return g
}

// Len returns the number of children
func (g *GridV) Len() int {
	return len(g.children)
}

func (g *GridV) NaturalSize() (int, int) {
	w, h := 0, 0
	for _, c := range g.children {
		cw, ch := c.NaturalSize()
		h += g.span(ch)
		w = max(w, cw)
	}
	return w, h
}

// span is the height a child with natural height ch occupies
func (g *GridV) span(ch int) int {
	ch = max(ch, 0)
	if _, h := g.assigned(); g.set && len(g.children) > 0 {
		ch = min(ch, max(h, 0)/len(g.children))
	}
	return ch
}

func (g *GridV) AssignSize(w, h int) {
	g.assign(w, h)
	if len(g.children) == 0 {
		return
	}
	share := h / len(g.children)
	for _, c := range g.children {
		c.AssignSize(w, share)
	}
}

func (g *GridV) CellAt(x, y int) (terminal.Cell, bool) {
	if !g.contains(x, y) {
		return none()
	}
	for _, c := range g.children {
		_, ch := c.NaturalSize()
		ch = g.span(ch)
		if y < ch {
			return c.CellAt(x, y)
		}
		y -= ch
	}
	return none()
}

package tui

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// BoxGlyphs lists a frame row by row: top-left, top, top-right, left,
// interior, right, bottom-left, bottom, bottom-right
type BoxGlyphs [9]rune

// Frame glyph sets
var (
	BoxSimple  = BoxGlyphs{'*', '-', '*', '|', ' ', '|', '*', '-', '*'}
	BoxSingle  = BoxGlyphs{'┌', '─', '┐', '│', ' ', '│', '└', '─', '┘'}
	BoxDouble  = BoxGlyphs{'╔', '═', '╗', '║', ' ', '║', '╚', '═', '╝'}
	BoxRounded = BoxGlyphs{'╭', '─', '╮', '│', ' ', '│', '╰', '─', '╯'}
	BoxHeavy   = BoxGlyphs{'┏', '━', '┓', '┃', ' ', '┃', '┗', '━', '┛'}
	BoxNone    = BoxGlyphs{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
)

// Box draws a one-cell frame around its child
type Box struct {
	extent
	Glyphs BoxGlyphs
	Color  terminal.Color
	child  Widget
}

// Boxed wraps child in a frame drawn with glyphs in color
func Boxed(child Widget, glyphs BoxGlyphs, c terminal.Color) *Box {
	return &Box{Glyphs: glyphs, Color: c, child: child}
}

func (b *Box) NaturalSize() (int, int) {
	w, h := b.child.NaturalSize()
	return w + 2, h + 2
}

func (b *Box) AssignSize(w, h int) {
	b.assign(w, h)
	b.child.AssignSize(w-2, h-2)
}

// band classifies a coordinate as first (0), inner (1) or last (2) along an axis of length n
func band(v, n int) int {
	switch {
	case v == 0:
		return 0
	case v == n-1:
		return 2
	}
	return 1
}

func (b *Box) CellAt(x, y int) (terminal.Cell, bool) {
	if !b.contains(x, y) {
		return none()
	}
	w, h := b.NaturalSize()
	if x >= w || y >= h {
		return none()
	}

	col, row := band(x, w), band(y, h)
	if col == 1 && row == 1 {
		if c, ok := b.child.CellAt(x-1, y-1); ok {
			return c, true
		}
		return terminal.Cell{Rune: b.Glyphs[4]}, true
	}
	return terminal.NewCell(b.Glyphs[row*3+col], b.Color), true
}

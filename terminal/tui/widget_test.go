package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hsterm/terminal"
)

// snapshot captures every CellAt result in [-2,w+2) x [-2,h+2)
func snapshot(wg Widget, w, h int) map[[2]int]terminal.Cell {
	out := make(map[[2]int]terminal.Cell)
	for y := -2; y < h+2; y++ {
		for x := -2; x < w+2; x++ {
			if c, ok := wg.CellAt(x, y); ok {
				out[[2]int{x, y}] = c
			}
		}
	}
	return out
}

// row reads the runes of row y in [0,w), '.' for undrawn cells
func row(wg Widget, y, w int) string {
	rs := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c, ok := wg.CellAt(x, y)
		if !ok {
			rs = append(rs, '.')
			continue
		}
		rs = append(rs, c.Rune)
	}
	return string(rs)
}

func treeBuilders() map[string]func() Widget {
	text := func() *Text { return NewText("Hello World, wrapped\tand\ntabbed") }
	return map[string]func() Widget{
		"text":       func() Widget { return text() },
		"margin":     func() Widget { return Margined(text(), 1, 2) },
		"center":     func() Widget { return Centered(text()) },
		"spacer":     func() Widget { return Stretched(text(), 30, 10) },
		"background": func() Widget { return WithBackground(text(), terminal.Blue) },
		"box":        func() Widget { return Boxed(text(), BoxSingle, terminal.Red) },
		"max":        func() Widget { return Capped(text(), 4, 2) },
		"grid_h":     func() Widget { return NewGridH(text(), Stretched(text(), 5, 5), Boxed(text(), BoxDouble, terminal.Green)) },
		"grid_v":     func() Widget { return NewGridV(text(), Margined(text(), 2, 0)) },
		"grid_empty": func() Widget { return NewGridH() },
		"nested": func() Widget {
			return Stretched(Centered(Boxed(Margined(WithBackground(text(), terminal.White), 1, 0), BoxRounded, terminal.Cyan)), 0, 0)
		},
	}
}

func TestCellAt_ClippedToAssignedSize(t *testing.T) {
	sizes := [][2]int{{0, 0}, {-3, 2}, {3, -1}, {-2, -2}, {1, 1}, {4, 2}, {7, 5}, {40, 12}}

	for name, build := range treeBuilders() {
		for _, sz := range sizes {
			t.Run(fmt.Sprintf("%s/%dx%d", name, sz[0], sz[1]), func(t *testing.T) {
				wg := build()
				wg.AssignSize(sz[0], sz[1])
				for y := -4; y < 60; y++ {
					for x := -4; x < 80; x++ {
						inside := x >= 0 && y >= 0 && x < sz[0] && y < sz[1]
						if inside {
							continue
						}
						c, ok := wg.CellAt(x, y)
						if ok || c != terminal.EmptyCell {
							t.Fatalf("CellAt(%d,%d) = %v,%v outside %dx%d", x, y, c, ok, sz[0], sz[1])
						}
					}
				}
			})
		}
	}
}

func TestCellAt_NegativeBeforeAssign(t *testing.T) {
	for name, build := range treeBuilders() {
		wg := build()
		_, ok := wg.CellAt(-1, 0)
		assert.False(t, ok, name)
		_, ok = wg.CellAt(0, -1)
		assert.False(t, ok, name)
	}
}

func TestMargin(t *testing.T) {
	m := Margined(NewText("ab"), 2, 1)

	w, h := m.NaturalSize()
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)

	m.AssignSize(6, 3)
	assert.Equal(t, "      ", row(m, 0, 6))
	assert.Equal(t, "  ab  ", row(m, 1, 6))
	assert.Equal(t, "      ", row(m, 2, 6))
}

func TestMargin_ComposesAdditively(t *testing.T) {
	content := "ab\ncd\ne"
	tests := []struct{ dx, dy int }{{1, 2}, {0, 1}, {3, 0}, {2, 2}}

	for _, tt := range tests {
		twice := Margined(Margined(NewText(content), tt.dx, tt.dy), tt.dx, tt.dy)
		once := Margined(NewText(content), 2*tt.dx, 2*tt.dy)

		tw, th := twice.NaturalSize()
		ow, oh := once.NaturalSize()
		require.Equal(t, ow, tw)
		require.Equal(t, oh, th)

		assert.Equal(t, snapshot(once, ow, oh), snapshot(twice, tw, th), "unassigned %+v", tt)

		twice.AssignSize(ow, oh)
		once.AssignSize(ow, oh)
		assert.Equal(t, snapshot(once, ow, oh), snapshot(twice, tw, th), "assigned %+v", tt)
	}
}

func TestCenter(t *testing.T) {
	c := Centered(NewText("hi"))

	w, h := c.NaturalSize()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	c.AssignSize(7, 3)
	w, h = c.NaturalSize()
	assert.Equal(t, 7, w)
	assert.Equal(t, 3, h)

	assert.Equal(t, "       ", row(c, 0, 7))
	assert.Equal(t, "  hi   ", row(c, 1, 7), "odd slack floors toward the top-left")
	assert.Equal(t, "       ", row(c, 2, 7))
}

func TestCenter_IdempotentReassign(t *testing.T) {
	c := Centered(Boxed(NewText("some words that wrap"), BoxSingle, terminal.Red))

	c.AssignSize(12, 8)
	first := snapshot(c, 12, 8)
	c.AssignSize(12, 8)
	second := snapshot(c, 12, 8)

	assert.Equal(t, first, second)
}

func TestCenter_TracksRewrappedChild(t *testing.T) {
	c := Centered(Capped(NewText("aaaa bbbb"), 4, 10))
	w, _ := c.NaturalSize()
	require.Equal(t, 4, w)

	c.AssignSize(6, 4)

	// Rewrapped to width 4 the text is 4x2: one column of slack each side, one row above
	assert.Equal(t, "      ", row(c, 0, 6))
	assert.Equal(t, " aaaa ", row(c, 1, 6))
	assert.Equal(t, " bbbb ", row(c, 2, 6))
	assert.Equal(t, "      ", row(c, 3, 6))
}

func TestSpacer(t *testing.T) {
	s := Stretched(NewText("ab"), 3, 2)

	w, h := s.NaturalSize()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	s.AssignSize(5, 3)
	w, h = s.NaturalSize()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, "ab   ", row(s, 0, 5))
	assert.Equal(t, "     ", row(s, 2, 5))
}

func TestBackground(t *testing.T) {
	inner := WithBackground(NewColoredText(terminal.Red, "a"), terminal.Green)
	outer := WithBackground(NewGridH(inner, NewText("b")), terminal.Blue)

	c, ok := outer.CellAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, terminal.Red, c.Fg)
	assert.Equal(t, terminal.Green, c.Bg, "set backgrounds are kept")

	c, ok = outer.CellAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, terminal.Blue, c.Bg)

	_, ok = outer.CellAt(2, 0)
	assert.False(t, ok, "undrawn cells stay undrawn")
}

func TestBox(t *testing.T) {
	b := Boxed(NewText("a\nbc"), BoxSingle, terminal.Red)

	w, h := b.NaturalSize()
	require.Equal(t, 4, w)
	require.Equal(t, 4, h)

	b.AssignSize(w, h)
	assert.Equal(t, "┌──┐", row(b, 0, 4))
	assert.Equal(t, "│a │", row(b, 1, 4))
	assert.Equal(t, "│bc│", row(b, 2, 4))
	assert.Equal(t, "└──┘", row(b, 3, 4))

	c, _ := b.CellAt(0, 0)
	assert.Equal(t, terminal.Red, c.Fg)

	fill, ok := b.CellAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, ' ', fill.Rune)
	assert.True(t, fill.Fg.IsNone())
}

func TestBox_Simple(t *testing.T) {
	b := Boxed(NewText("x"), BoxSimple, terminal.ColorNone)
	b.AssignSize(3, 3)
	assert.Equal(t, "*-*", row(b, 0, 3))
	assert.Equal(t, "|x|", row(b, 1, 3))
	assert.Equal(t, "*-*", row(b, 2, 3))
}

func TestGridH_EvenShares(t *testing.T) {
	g := NewGridH(
		Stretched(NewText("a"), 0, 0),
		Stretched(NewText("b"), 0, 0),
		Stretched(NewText("c"), 0, 0),
	)
	g.AssignSize(10, 1)

	assert.Equal(t, "a  b  c  .", row(g, 0, 10), "remainder column stays empty")

	total := 0
	for _, child := range g.children {
		cw, _ := child.NaturalSize()
		total += cw
	}
	assert.LessOrEqual(t, total, 10)
}

func TestGridV_EvenShares(t *testing.T) {
	g := NewGridV().
		Add(Stretched(NewText("a"), 0, 0)).
		Add(Stretched(NewText("b"), 0, 0)).
		Add(Stretched(NewText("c"), 0, 0))
	require.Equal(t, 3, g.Len())

	g.AssignSize(2, 8)
	want := []string{"a ", "  ", "b ", "  ", "c ", "  ", "..", ".."}
	for y, w := range want {
		assert.Equal(t, w, row(g, y, 2), "row %d", y)
	}
}

func TestGrid_Natural(t *testing.T) {
	h := NewGridH(NewText("ab"), NewText("c\nd\ne"))
	w, ht := h.NaturalSize()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, ht)

	v := NewGridV(NewText("ab"), NewText("c\nd\ne"))
	w, ht = v.NaturalSize()
	assert.Equal(t, 2, w)
	assert.Equal(t, 4, ht)

	e := NewGridV()
	e.AssignSize(10, 10)
	w, ht = e.NaturalSize()
	assert.Zero(t, w)
	assert.Zero(t, ht)
}

func TestMax(t *testing.T) {
	m := Capped(NewText("hello world"), 5, 1)

	w, h := m.NaturalSize()
	assert.Equal(t, 5, w)
	assert.Equal(t, 1, h)

	m.AssignSize(20, 3)
	assert.Equal(t, "hello", row(m, 0, 5))
	_, ok := m.CellAt(0, 1)
	assert.False(t, ok)
	_, ok = m.CellAt(5, 0)
	assert.False(t, ok)
}

func TestGridH_OversizedChildClipped(t *testing.T) {
	g := NewGridH(Margined(NewText("a"), 2, 0), Margined(NewText("b"), 0, 0))
	g.AssignSize(4, 1)

	total := 0
	for _, child := range g.children {
		cw, _ := child.NaturalSize()
		total += g.span(cw)
	}
	assert.LessOrEqual(t, total, 4)
	assert.Equal(t, "..b.", row(g, 0, 4))
}

func TestGridH_WideRuneInNarrowShare(t *testing.T) {
	g := NewGridH(NewText("日本"), NewText("xy"))
	g.AssignSize(2, 2)

	c, ok := g.CellAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, 'x', c.Rune)
	c, ok = g.CellAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 'y', c.Rune)
}

func TestGridV_OversizedChildClipped(t *testing.T) {
	g := NewGridV(Margined(NewText("a"), 0, 2), NewText("b"))
	g.AssignSize(1, 4)

	_, h := g.NaturalSize()
	assert.LessOrEqual(t, h, 4)
	assert.Equal(t, "b", row(g, 2, 1))
}

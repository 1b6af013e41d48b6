package tui

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/hsterm/terminal"
)

// textBuffer is the laid-out form of a Text at one width
type textBuffer struct {
	width   int
	tabSize int
	lines   [][]terminal.Cell
	longest int
}

func newTextBuffer(width, tabSize int) *textBuffer {
	return &textBuffer{width: width, tabSize: tabSize}
}

// writeWords segments s on Unicode word boundaries and writes each segment
func (b *textBuffer) writeWords(s string, fg terminal.Color) {
	state := -1
	var seg string
	for len(s) > 0 {
		seg, s, state = uniseg.FirstWordInString(s, state)
		b.writeSegment(seg, fg)
	}
}

// writeSegment moves a segment that would overflow to a fresh line when it
// is narrower than the line; others start in place and are hard-wrapped
func (b *textBuffer) writeSegment(seg string, fg terminal.Color) {
	if b.width <= 0 {
		return
	}
	w := segmentWidth(seg)
	cur := b.cursor()
	if cur > 0 && cur+w > b.width && w < b.width {
		if blank(seg) {
			return
		}
		b.newline()
	}
	for _, r := range seg {
		b.writeRune(r, fg)
	}
}

func (b *textBuffer) writeRune(r rune, fg terminal.Color) {
	switch {
	case r == '\n':
		if len(b.lines) == 0 {
			b.newline()
		}
		b.newline()
		return
	case r == '\t':
		b.writeTab()
		return
	case r < 0x20 || r == 0x7f:
		return
	}

	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		return
	}
	if cur := b.cursor(); len(b.lines) == 0 || (cur > 0 && cur+rw > b.width) {
		b.newline()
	}
	b.put(terminal.NewCell(r, fg))
	if rw == 2 {
		b.put(terminal.NewCell(0, fg))
	}
}

// writeTab pads to the next tab stop, breaking first when the stop would reach the edge
func (b *textBuffer) writeTab() {
	if b.tabSize <= 0 {
		return
	}
	cur := b.cursor()
	indent := b.tabSize - cur%b.tabSize
	if cur > 0 && cur+indent >= b.width {
		b.newline()
		indent = b.tabSize
	}
	if len(b.lines) == 0 {
		b.newline()
	}
	for range min(indent, b.width) {
		b.put(terminal.EmptyCell)
	}
}

func (b *textBuffer) put(c terminal.Cell) {
	last := len(b.lines) - 1
	b.lines[last] = append(b.lines[last], c)
	b.longest = max(b.longest, len(b.lines[last]))
}

func (b *textBuffer) newline() {
	b.lines = append(b.lines, make([]terminal.Cell, 0, min(b.width, 1024)))
}

// cursor returns the column after the last cell of the current line
func (b *textBuffer) cursor() int {
	if len(b.lines) == 0 {
		return 0
	}
	return len(b.lines[len(b.lines)-1])
}

func (b *textBuffer) cell(x, y int) (terminal.Cell, bool) {
	if y < 0 || y >= len(b.lines) {
		return none()
	}
	line := b.lines[y]
	if x < 0 || x >= len(line) {
		return none()
	}
	return line[x], true
}

// segmentWidth counts the columns a segment occupies, excluding control characters
func segmentWidth(seg string) int {
	w := 0
	for _, r := range seg {
		if r < 0x20 || r == 0x7f {
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// blank reports whether seg is horizontal whitespace only
func blank(seg string) bool {
	for _, r := range seg {
		if r == '\n' || r == '\t' || !unicode.IsSpace(r) {
			return false
		}
	}
	return seg != ""
}

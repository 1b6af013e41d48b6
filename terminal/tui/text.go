package tui

import (
	"strings"

	"github.com/lixenwraith/hsterm/terminal"
)

const (
	// DefaultTextWidth is the wrap width before a Text is first assigned a size
	DefaultTextWidth = 80
	// DefaultTabSize is the tab stop interval
	DefaultTabSize = 4
)

// fragment is a run of text in one foreground color
type fragment struct {
	fg   terminal.Color
	text string
}

// Text is a word-wrapping leaf. Layout runs lazily and is cached until the
// width changes or the content is modified.
type Text struct {
	extent
	width   int
	tabSize int
	frags   []fragment
	buf     *textBuffer
}

// NewText creates a Text in the default foreground color
func NewText(s string) *Text {
	return NewColoredText(terminal.ColorNone, s)
}

// NewColoredText creates a Text whose first fragment uses fg
func NewColoredText(fg terminal.Color, s string) *Text {
	t := &Text{width: DefaultTextWidth, tabSize: DefaultTabSize}
	if s != "" {
		t.frags = append(t.frags, fragment{fg: fg, text: s})
	}
	return t
}

// Write appends text in the default foreground color
func (t *Text) Write(s string) *Text {
	return t.WriteColor(terminal.ColorNone, s)
}

// WriteColor appends text in fg
func (t *Text) WriteColor(fg terminal.Color, s string) *Text {
	t.frags = append(t.frags, fragment{fg: fg, text: s})
	t.buf = nil
	return t
}

// Clear removes all content
func (t *Text) Clear() {
	t.frags = t.frags[:0]
	t.buf = nil
}

// SetTabSize changes the tab stop interval; zero or less drops tabs
func (t *Text) SetTabSize(n int) {
	if n != t.tabSize {
		t.tabSize = n
		t.buf = nil
	}
}

// Width returns the wrap width
func (t *Text) Width() int {
	return t.width
}

// layout returns the cached buffer, rebuilding it when invalidated
func (t *Text) layout() *textBuffer {
	if t.buf == nil {
		b := newTextBuffer(t.width, t.tabSize)
		for _, f := range t.frags {
			b.writeWords(f.text, f.fg)
		}
		t.buf = b
	}
	return t.buf
}

// NaturalSize is the longest line by the number of lines
func (t *Text) NaturalSize() (int, int) {
	b := t.layout()
	return b.longest, len(b.lines)
}

// AssignSize rewraps at w; the height only clips
func (t *Text) AssignSize(w, h int) {
	t.assign(w, h)
	if w != t.width {
		t.width = w
		t.buf = nil
	}
}

func (t *Text) CellAt(x, y int) (terminal.Cell, bool) {
	if !t.contains(x, y) {
		return none()
	}
	return t.layout().cell(x, y)
}

// Lines returns the wrapped content without colors
func (t *Text) Lines() []string {
	b := t.layout()
	out := make([]string, len(b.lines))
	var sb strings.Builder
	for i, line := range b.lines {
		sb.Reset()
		for _, c := range line {
			if !c.IsContinuation() {
				sb.WriteRune(c.Rune)
			}
		}
		out[i] = sb.String()
	}
	return out
}

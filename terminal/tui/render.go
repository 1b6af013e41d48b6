package tui

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/lixenwraith/hsterm/terminal"
)

// Renderer serializes widget trees into ANSI frames
type Renderer struct {
	Mode terminal.ColorMode
	buf  []byte
}

// NewRenderer creates a renderer emitting colors for mode
func NewRenderer(mode terminal.ColorMode) *Renderer {
	return &Renderer{Mode: mode}
}

// Render serializes root over its natural size
func (r *Renderer) Render(root Widget) string {
	w, h := root.NaturalSize()
	r.buf = r.Append(r.buf[:0], root, w, h)
	return string(r.buf)
}

// Frame assigns w x h to root and serializes the part of it that fits
func (r *Renderer) Frame(root Widget, w, h int) string {
	r.buf = r.frame(r.buf[:0], root, w, h)
	return string(r.buf)
}

// Flush writes one frame of root sized w x h to out
func (r *Renderer) Flush(out io.Writer, root Widget, w, h int) error {
	r.buf = r.frame(r.buf[:0], root, w, h)
	bw := bufio.NewWriterSize(out, len(r.buf)+1)
	if _, err := bw.Write(r.buf); err != nil {
		return err
	}
	return bw.Flush()
}

func (r *Renderer) frame(dst []byte, root Widget, w, h int) []byte {
	root.AssignSize(w, h)
	nw, nh := root.NaturalSize()
	return r.Append(dst, root, min(w, nw), min(h, nh))
}

// Append serializes rows 0..h and columns 0..w of root onto dst.
// The frame starts at the cursor home position with attributes reset; rows
// are separated by newlines with none after the last. Nothing is appended
// for an empty area.
func (r *Renderer) Append(dst []byte, root Widget, w, h int) []byte {
	if w <= 0 || h <= 0 {
		return dst
	}

	dst = terminal.AppendHome(dst)
	dst = terminal.AppendReset(dst)

	fg, bg := terminal.ColorNone, terminal.ColorNone
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := root.CellAt(x, y)
			if !ok {
				c = terminal.EmptyCell
			}
			if c.IsContinuation() {
				continue
			}

			if c.Fg != fg {
				fg = c.Fg
				// SGR 0 clears the background along with the foreground
				if fg.IsNone() {
					bg = terminal.ColorNone
				}
				dst = terminal.AppendFg(dst, fg, r.Mode)
			}
			if c.Bg != bg {
				bg = c.Bg
				dst = terminal.AppendBg(dst, bg, r.Mode)
			}
			dst = utf8.AppendRune(dst, c.Rune)
		}
		if y != h-1 {
			dst = append(dst, '\n')
		}
	}
	return dst
}

// Render serializes root over its natural size in truecolor
func Render(root Widget) string {
	return NewRenderer(terminal.ColorModeTrueColor).Render(root)
}

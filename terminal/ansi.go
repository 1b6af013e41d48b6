package terminal

// Pre-allocated ANSI sequence fragments
var (
	csiSGR0       = []byte("\x1b[0m")
	csiHome       = []byte("\x1b[H")
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiDefaultBg  = []byte("\x1b[49m")

	csiFg256 = []byte("\x1b[38;5;") // followed by N m
	csiBg256 = []byte("\x1b[48;5;") // followed by N m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B m
)

// appendInt appends a non-negative integer without allocation
// Optimized for terminal values (0-255 common)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendReset appends SGR 0, which clears foreground and background together
func AppendReset(dst []byte) []byte {
	return append(dst, csiSGR0...)
}

// AppendHome appends cursor-home
func AppendHome(dst []byte) []byte {
	return append(dst, csiHome...)
}

// AppendClear appends erase-display followed by cursor-home
func AppendClear(dst []byte) []byte {
	return append(dst, csiClear...)
}

// AppendFg appends the SGR sequence selecting c as foreground.
// Unset emits SGR 0, so callers must treat the background as reset too.
func AppendFg(dst []byte, c Color, mode ColorMode) []byte {
	c = c.ForMode(mode)
	switch c.kind {
	case kindNone:
		return append(dst, csiSGR0...)
	case kindNamed:
		idx, _ := c.Index()
		base := 30
		if idx >= 8 {
			base = 90 - 8
		}
		dst = append(dst, '\x1b', '[')
		dst = appendInt(dst, base+int(idx))
		return append(dst, 'm')
	case kindPalette:
		idx, _ := c.Index()
		dst = append(dst, csiFg256...)
		dst = appendInt(dst, int(idx))
		return append(dst, 'm')
	default:
		dst = append(dst, csiFgRGB...)
		return appendTriple(dst, c)
	}
}

// AppendBg appends the SGR sequence selecting c as background.
// Unset emits SGR 49 which leaves the foreground alone.
func AppendBg(dst []byte, c Color, mode ColorMode) []byte {
	c = c.ForMode(mode)
	switch c.kind {
	case kindNone:
		return append(dst, csiDefaultBg...)
	case kindNamed:
		idx, _ := c.Index()
		base := 40
		if idx >= 8 {
			base = 100 - 8
		}
		dst = append(dst, '\x1b', '[')
		dst = appendInt(dst, base+int(idx))
		return append(dst, 'm')
	case kindPalette:
		idx, _ := c.Index()
		dst = append(dst, csiBg256...)
		dst = appendInt(dst, int(idx))
		return append(dst, 'm')
	default:
		dst = append(dst, csiBgRGB...)
		return appendTriple(dst, c)
	}
}

func appendTriple(dst []byte, c Color) []byte {
	r, g, b, _ := c.Triple()
	dst = appendInt(dst, int(r))
	dst = append(dst, ';')
	dst = appendInt(dst, int(g))
	dst = append(dst, ';')
	dst = appendInt(dst, int(b))
	return append(dst, 'm')
}

package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// colorKind tags the Color variant
type colorKind uint8

const (
	kindNone colorKind = iota
	kindNamed
	kindPalette
	kindRGB
)

// Color is one of: unset (terminal default), a named ANSI color, a 256-palette
// index or a 24-bit RGB triple. The zero value is unset.
type Color struct {
	kind    colorKind
	r, g, b uint8 // kindNamed/kindPalette: index in r
}

// ColorNone leaves the cell on the terminal's default color
var ColorNone = Color{}

// Named ANSI colors, SGR 30-37 / 90-97
var (
	Black         = named(0)
	Red           = named(1)
	Green         = named(2)
	Yellow        = named(3)
	Blue          = named(4)
	Magenta       = named(5)
	Cyan          = named(6)
	White         = named(7)
	BrightBlack   = named(8)
	BrightRed     = named(9)
	BrightGreen   = named(10)
	BrightYellow  = named(11)
	BrightBlue    = named(12)
	BrightMagenta = named(13)
	BrightCyan    = named(14)
	BrightWhite   = named(15)
)

func named(i uint8) Color {
	return Color{kind: kindNamed, r: i}
}

// Named returns the i-th named ANSI color (0-7 normal, 8-15 bright); out of range is unset
func Named(i int) Color {
	if i < 0 || i > 15 {
		return ColorNone
	}
	return named(uint8(i))
}

// Palette returns a 256-color palette entry
func Palette(i uint8) Color {
	return Color{kind: kindPalette, r: i}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Hex returns a 24-bit color from 0xRRGGBB
func Hex(rgb uint32) Color {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// IsNone reports whether c is unset
func (c Color) IsNone() bool {
	return c.kind == kindNone
}

// IsRGB reports whether c is a 24-bit color
func (c Color) IsRGB() bool {
	return c.kind == kindRGB
}

// Index returns the named or palette index; ok is false for unset and RGB colors
func (c Color) Index() (idx uint8, ok bool) {
	if c.kind == kindNamed || c.kind == kindPalette {
		return c.r, true
	}
	return 0, false
}

// Triple returns the RGB components of an RGB color, or the xterm default
// rendering of a named or palette color. Unset returns ok=false.
func (c Color) Triple() (r, g, b uint8, ok bool) {
	switch c.kind {
	case kindRGB:
		return c.r, c.g, c.b, true
	case kindNamed, kindPalette:
		p := paletteRGB(c.r)
		return p[0], p[1], p[2], true
	}
	return 0, 0, 0, false
}

func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		return namedColorNames[c.r]
	case kindPalette:
		return fmt.Sprintf("palette(%d)", c.r)
	case kindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "none"
}

var namedColorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

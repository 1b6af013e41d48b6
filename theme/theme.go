// Package theme holds the colour schemes of the viewer.
package theme

import (
	"github.com/lixenwraith/hsterm/terminal"
)

// Theme names the colours every view draws with
type Theme struct {
	Background terminal.Color
	TextBack1  terminal.Color
	TextBack2  terminal.Color
	Text       terminal.Color
	Heading    terminal.Color
	Error      terminal.Color
}

// Solarized palette
var (
	Base3   = terminal.Hex(0xfdf6e3)
	Base2   = terminal.Hex(0xeee8d5)
	Base00  = terminal.Hex(0x657b83)
	Base01  = terminal.Hex(0x586e75)
	Yellow  = terminal.Hex(0xb58900)
	Orange  = terminal.Hex(0xcb4b16)
	Red     = terminal.Hex(0xdc322f)
	Magenta = terminal.Hex(0xd33682)
	Violet  = terminal.Hex(0x6c71c4)
	Blue    = terminal.Hex(0x268bd2)
	Cyan    = terminal.Hex(0x2aa198)
	Green   = terminal.Hex(0x859900)
)

// Solarized is the truecolor scheme
func Solarized() Theme {
	return Theme{
		Background: Cyan,
		TextBack1:  Base3,
		TextBack2:  Base2,
		Text:       Base00,
		Heading:    Base01,
		Error:      Red,
	}
}

// Basic uses named ANSI colours only
func Basic() Theme {
	return Theme{
		Background: terminal.Cyan,
		TextBack1:  terminal.Blue,
		TextBack2:  terminal.Magenta,
		Text:       terminal.White,
		Heading:    terminal.White,
		Error:      terminal.Red,
	}
}

// Select picks Solarized on truecolor terminals and Basic otherwise
func Select(mode terminal.ColorMode) Theme {
	if mode == terminal.ColorModeTrueColor {
		return Solarized()
	}
	return Basic()
}

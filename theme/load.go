package theme

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hsterm/terminal"
)

// file is the on-disk form; empty fields keep the base colour
type file struct {
	Background string `toml:"background"`
	TextBack1  string `toml:"text_back1"`
	TextBack2  string `toml:"text_back2"`
	Text       string `toml:"text"`
	Heading    string `toml:"heading"`
	Error      string `toml:"error"`
}

var ansiNames = map[string]terminal.Color{
	"black":         terminal.Black,
	"red":           terminal.Red,
	"green":         terminal.Green,
	"yellow":        terminal.Yellow,
	"blue":          terminal.Blue,
	"magenta":       terminal.Magenta,
	"cyan":          terminal.Cyan,
	"white":         terminal.White,
	"brightblack":   terminal.BrightBlack,
	"brightred":     terminal.BrightRed,
	"brightgreen":   terminal.BrightGreen,
	"brightyellow":  terminal.BrightYellow,
	"brightblue":    terminal.BrightBlue,
	"brightmagenta": terminal.BrightMagenta,
	"brightcyan":    terminal.BrightCyan,
	"brightwhite":   terminal.BrightWhite,
}

// ParseColor resolves a colour name. The 16 ANSI names map to named colours,
// "default" or "none" to the terminal default; anything else goes through
// tcell's colour table (W3C names, #rrggbb).
func ParseColor(s string) (terminal.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "default", "none", "reset":
		return terminal.ColorNone, nil
	}
	if c, ok := ansiNames[strings.ReplaceAll(name, "_", "")]; ok {
		return c, nil
	}

	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return terminal.ColorNone, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.ColorNone, fmt.Errorf("color %q has no RGB value", s)
	}
	return terminal.RGB(uint8(r), uint8(g), uint8(b)), nil
}

// Load overlays the colours set in the TOML file at path onto base.
// Unknown keys are an error.
func Load(path string, base Theme) (Theme, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return base, fmt.Errorf("theme %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("theme %s: unknown keys %v", path, undecoded)
	}

	t := base
	fields := []struct {
		val string
		dst *terminal.Color
	}{
		{f.Background, &t.Background},
		{f.TextBack1, &t.TextBack1},
		{f.TextBack2, &t.TextBack2},
		{f.Text, &t.Text},
		{f.Heading, &t.Heading},
		{f.Error, &t.Error},
	}
	for _, fld := range fields {
		if fld.val == "" {
			continue
		}
		c, err := ParseColor(fld.val)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", path, err)
		}
		*fld.dst = c
	}
	return t, nil
}

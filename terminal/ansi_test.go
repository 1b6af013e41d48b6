package terminal

import (
	"testing"
)

func TestAppendFg(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		mode ColorMode
		want string
	}{
		{"unset", ColorNone, ColorModeTrueColor, "\x1b[0m"},
		{"named", Red, ColorModeTrueColor, "\x1b[31m"},
		{"bright", BrightCyan, ColorMode256, "\x1b[96m"},
		{"palette", Palette(200), ColorModeTrueColor, "\x1b[38;5;200m"},
		{"rgb", RGB(1, 22, 233), ColorModeTrueColor, "\x1b[38;2;1;22;233m"},
		{"rgb downgraded", RGB(255, 0, 0), ColorMode256, "\x1b[38;5;196m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendFg(nil, tt.c, tt.mode))
			if got != tt.want {
				t.Errorf("AppendFg(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestAppendBg(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		mode ColorMode
		want string
	}{
		{"unset", ColorNone, ColorModeTrueColor, "\x1b[49m"},
		{"named", Blue, ColorModeTrueColor, "\x1b[44m"},
		{"bright", BrightWhite, ColorModeTrueColor, "\x1b[107m"},
		{"palette", Palette(17), ColorMode256, "\x1b[48;5;17m"},
		{"rgb", Hex(0xfdf6e3), ColorModeTrueColor, "\x1b[48;2;253;246;227m"},
		{"rgb downgraded", RGB(0, 0, 0), ColorMode256, "\x1b[48;5;16m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendBg(nil, tt.c, tt.mode))
			if got != tt.want {
				t.Errorf("AppendBg(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestAppendInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 255, 1000, 65535} {
		got := string(appendInt(nil, n))
		want := itoa(n)
		if got != want {
			t.Errorf("appendInt(%d) = %q, want %q", n, got, want)
		}
	}
	if got := string(appendInt(nil, -5)); got != "0" {
		t.Errorf("negative values clamp to 0, got %q", got)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var s []byte
	for n > 0 {
		s = append([]byte{byte('0' + n%10)}, s...)
		n /= 10
	}
	return string(s)
}

func TestRGBTo256_ExactEntries(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{255, 0, 0, 196},
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{128, 128, 128, 244},
		{95, 135, 175, 67},
	}

	for _, tt := range tests {
		if got := RGBTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBTo256(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRGBTo256_NeverSystemColor(t *testing.T) {
	for _, rgb := range []uint32{0x2aa198, 0xdc322f, 0x657b83, 0xeee8d5} {
		c := Hex(rgb)
		r, g, b, _ := c.Triple()
		if idx := RGBTo256(r, g, b); idx < 16 {
			t.Errorf("%v downgraded to system color %d", c, idx)
		}
	}
}

func TestColorForMode(t *testing.T) {
	if got := Red.ForMode(ColorMode256); got != Red {
		t.Errorf("named colors pass through, got %v", got)
	}
	c := RGB(10, 20, 30)
	if got := c.ForMode(ColorModeTrueColor); got != c {
		t.Errorf("truecolor keeps RGB, got %v", got)
	}
	if got := c.ForMode(ColorMode256); got.IsRGB() {
		t.Errorf("256 mode must downgrade RGB, got %v", got)
	}
}

func TestColorAccessors(t *testing.T) {
	if !ColorNone.IsNone() {
		t.Error("zero Color should be unset")
	}
	if idx, ok := BrightRed.Index(); !ok || idx != 9 {
		t.Errorf("BrightRed.Index() = %d, %v", idx, ok)
	}
	if _, ok := RGB(1, 2, 3).Index(); ok {
		t.Error("RGB colors have no index")
	}
	if r, g, b, ok := Palette(21).Triple(); !ok || r != 0 || g != 0 || b != 255 {
		t.Errorf("Palette(21).Triple() = %d,%d,%d", r, g, b)
	}
	if got := Named(16); !got.IsNone() {
		t.Errorf("Named out of range should be unset, got %v", got)
	}
	if got := Hex(0x2aa198).String(); got != "#2aa198" {
		t.Errorf("Hex string = %q", got)
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("COLORTERM=truecolor: got %v", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("TERM=xterm-256color: got %v", got)
	}

	t.Setenv("TERM", "xterm-direct")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("TERM=xterm-direct: got %v", got)
	}
}

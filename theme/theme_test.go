package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hsterm/terminal"
)

func TestSelect(t *testing.T) {
	assert.Equal(t, Solarized(), Select(terminal.ColorModeTrueColor))
	assert.Equal(t, Basic(), Select(terminal.ColorMode256))
	assert.Equal(t, "#2aa198", Solarized().Background.String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want terminal.Color
	}{
		{"red", terminal.Red},
		{"Bright_Cyan", terminal.BrightCyan},
		{"default", terminal.ColorNone},
		{"#fdf6e3", terminal.Hex(0xfdf6e3)},
		{"aliceblue", terminal.Hex(0xf0f8ff)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseColor("not-a-colour")
	assert.Error(t, err)
}

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Overrides(t *testing.T) {
	path := writeTheme(t, `
background = "blue"
error = "#ff0000"
`)

	got, err := Load(path, Solarized())
	require.NoError(t, err)

	want := Solarized()
	want.Background = terminal.Blue
	want.Error = terminal.Hex(0xff0000)
	assert.Equal(t, want, got)
}

func TestLoad_Errors(t *testing.T) {
	base := Basic()

	got, err := Load(writeTheme(t, `backgroud = "red"`), base)
	assert.ErrorContains(t, err, "unknown keys")
	assert.Equal(t, base, got)

	_, err = Load(writeTheme(t, `text = "chartreuse-ish"`), base)
	assert.ErrorContains(t, err, "unknown color")

	_, err = Load(writeTheme(t, `text = [`), base)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"), base)
	assert.Error(t, err)
}

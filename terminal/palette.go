package terminal

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// xterm defaults for the 16 system colors; terminals may theme these
var systemColors = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// paletteLab holds Lab coordinates of indices 16-255, built on first downgrade
var (
	paletteOnce sync.Once
	paletteLab  [256]colorful.Color
	downgraded  sync.Map // uint32 rgb -> uint8 index
)

// paletteRGB returns the xterm rendering of a 256-palette index
func paletteRGB(i uint8) [3]uint8 {
	switch {
	case i < 16:
		return systemColors[i]
	case i < grayscaleStart:
		n := i - 16
		return [3]uint8{cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]}
	default:
		level := 8 + 10*(i-grayscaleStart)
		return [3]uint8{level, level, level}
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func buildPaletteLab() {
	for i := 16; i < 256; i++ {
		p := paletteRGB(uint8(i))
		paletteLab[i] = toColorful(p[0], p[1], p[2])
	}
}

// RGBTo256 returns the palette index perceptually closest to an RGB triple.
// System colors 0-15 are skipped since their rendering depends on the terminal theme.
func RGBTo256(r, g, b uint8) uint8 {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if v, ok := downgraded.Load(key); ok {
		return v.(uint8)
	}

	paletteOnce.Do(buildPaletteLab)

	target := toColorful(r, g, b)
	best := 16
	bestDist := target.DistanceLab(paletteLab[16])
	for i := 17; i < 256; i++ {
		if d := target.DistanceLab(paletteLab[i]); d < bestDist {
			best, bestDist = i, d
		}
	}

	downgraded.Store(key, uint8(best))
	return uint8(best)
}

// ForMode returns c as the terminal will be asked to draw it in mode.
// RGB colors become palette entries in ColorMode256, everything else is unchanged.
func (c Color) ForMode(mode ColorMode) Color {
	if c.kind != kindRGB || mode == ColorModeTrueColor {
		return c
	}
	return Palette(RGBTo256(c.r, c.g, c.b))
}

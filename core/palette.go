package core

import (
	"fmt"
	"math"
	"strings"
)

// Palette selects the color function applied to newly spawned bodies
type Palette uint8

const (
	PaletteRGB Palette = iota
	PaletteGray
	PaletteWhite

	paletteCount
)

var paletteNames = [paletteCount]string{
	PaletteRGB:   "rgb",
	PaletteGray:  "gray",
	PaletteWhite: "white",
}

func (p Palette) String() string {
	if p < paletteCount {
		return paletteNames[p]
	}
	return "unknown"
}

// Next cycles rgb -> gray -> white -> rgb
func (p Palette) Next() Palette {
	return (p + 1) % paletteCount
}

// ParsePalette resolves a case-insensitive palette name
func ParsePalette(name string) (Palette, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range paletteNames {
		if s == n {
			return Palette(i), nil
		}
	}
	return PaletteRGB, fmt.Errorf("unknown palette %q", name)
}

// ColorOf maps a normalized scale in [0,1] to a color for the palette
func ColorOf(p Palette, scale float64) RGB {
	switch p {
	case PaletteGray:
		return colorGray(scale)
	case PaletteWhite:
		return RGBWhite
	default:
		return colorRGB(scale)
	}
}

// colorRGB runs three sine waves 120° apart so a 0..1 sweep is one hue cycle
// Scale is reduced to [0,1) first so whole-number scales hit the same samples
func colorRGB(scale float64) RGB {
	phase := (scale - math.Floor(scale)) * 2 * math.Pi
	return RGB{
		R: sineChannel(phase),
		G: sineChannel(phase + 2*math.Pi/3),
		B: sineChannel(phase + 4*math.Pi/3),
	}
}

func sineChannel(phase float64) uint8 {
	v := math.Floor(math.Sin(phase)*127 + 127)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// colorGray wraps at 255 so scale 1 returns to black
func colorGray(scale float64) RGB {
	c := int(math.Floor(scale*255)) % 255
	if c < 0 {
		c += 255
	}
	v := uint8(c)
	return RGB{v, v, v}
}

// Gradient samples n evenly spaced stops over [0,1) for palette previews
func Gradient(p Palette, n int) []RGB {
	if n <= 0 {
		return nil
	}
	stops := make([]RGB, n)
	for i := range stops {
		stops[i] = ColorOf(p, float64(i)/float64(n))
	}
	return stops
}

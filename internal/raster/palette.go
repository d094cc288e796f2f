package raster

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a single palette color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// PaletteSize is the number of entries in a dithering palette.
const PaletteSize = 7

// Palette is the fixed color set used by palette dithering. The arity is
// part of the output contract, so it is an array rather than a slice.
// Entry 0 doubles as the border fill color.
type Palette [PaletteSize]RGB

// DefaultPalette is the stock 7-color set. The values are load-bearing:
// existing outputs were produced against them.
var DefaultPalette = Palette{
	{R: 0x38, G: 0x48, B: 0x8d}, // blue
	{R: 0x54, G: 0x7a, B: 0x49}, // green
	{R: 0x9f, G: 0x4b, B: 0x4e}, // red
	{R: 0x24, G: 0x29, B: 0x33}, // black
	{R: 0xc9, G: 0xd1, B: 0x68}, // yellow
	{R: 0xb5, G: 0x5d, B: 0x4c}, // orange
	{R: 0xd3, G: 0xdd, B: 0xe4}, // white
}

// ParsePalette builds a palette from exactly PaletteSize hex color strings
// such as "#38488d".
func ParsePalette(specs []string) (Palette, error) {
	var p Palette
	if len(specs) != PaletteSize {
		return p, fmt.Errorf("palette needs exactly %d colors, got %d", PaletteSize, len(specs))
	}
	for i, spec := range specs {
		c, err := colorful.Hex(spec)
		if err != nil {
			return p, fmt.Errorf("palette entry %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		p[i] = RGB{R: r, G: g, B: b}
	}
	return p, nil
}

// Nearest returns the index of the palette entry closest to (r, g, b).
//
// Distance is a luminance-weighted squared difference: with
// rHat = (r + p.R)/2, dark comparisons (rHat < 128) weight the channels
// 2/4/3 and light ones 3/4/2, approximating the eye's shifting sensitivity
// between dark and light regions. Candidates are compared through a float32
// square root, and ties keep the lowest index.
func (p Palette) Nearest(r, g, b uint8) int {
	best := 0
	var shortest float32
	for i, c := range p {
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		rHat := (int(r) + int(c.R)) / 2

		var d2 int
		if rHat < 128 {
			d2 = 2*dr*dr + 4*dg*dg + 3*db*db
		} else {
			d2 = 3*dr*dr + 4*dg*dg + 2*db*db
		}
		d := float32(math.Sqrt(float64(d2)))

		if i == 0 || d < shortest {
			shortest = d
			best = i
		}
	}
	return best
}

// Package prefilter offers image conditioning steps applied before
// dithering. Error diffusion amplifies high-frequency noise and loses soft
// detail, so pipelines targeting small palettes usually blur noisy sources
// or sharpen soft ones first.
//
// The filters run on standard images via the bild library and round-trip
// through the codec conversion, so filtered output is a fresh 3-channel
// buffer even for grayscale input. A zero-radius blur is a plain copy and
// keeps the input's channel count.
package prefilter

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/marengo/rasterkit/internal/codec"
	"github.com/marengo/rasterkit/internal/raster"
)

// Blur returns a Gaussian-blurred copy of the buffer. Radius is in pixels;
// a radius of 0 or less returns an unmodified copy.
func Blur(b *raster.Buffer, radius float64) (*raster.Buffer, error) {
	if radius <= 0 {
		return codec.FromImage(codec.ToImage(b))
	}
	return codec.FromImage(blur.Gaussian(codec.ToImage(b), radius))
}

// Sharpen returns a copy of the buffer with a basic sharpening kernel
// applied.
func Sharpen(b *raster.Buffer) (*raster.Buffer, error) {
	return codec.FromImage(effect.Sharpen(codec.ToImage(b)))
}

// Unsharp returns a copy of the buffer sharpened by unsharp masking with
// the given radius and amount.
func Unsharp(b *raster.Buffer, radius, amount float64) (*raster.Buffer, error) {
	return codec.FromImage(effect.UnsharpMask(codec.ToImage(b), radius, amount))
}

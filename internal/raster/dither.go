package raster

import "fmt"

// Floyd-Steinberg weights, applied as err*num/16 with per-term truncation.
// The order of operations matters: multiplying first and truncating each
// term separately is what keeps outputs byte-for-byte stable.

// DitherMono converts the buffer to a black-and-white Floyd-Steinberg
// dithering, in place. Three stages: RGB input collapses to grayscale via
// (R+G+B)/3 (grayscale input is used directly), the grayscale plane is
// error-diffused, and the result is replicated into three channels, so the
// buffer always ends up 3-channel.
//
// Border pixels (first and last column, last row) are forced to white and
// excluded from diffusion. Interior pixels threshold at 128 with values
// <= 128 mapping to white and the rest to black; the signed quantization
// error spreads right 7/16, below-left 3/16, below 5/16, below-right 1/16,
// and neighbor bytes wrap on overflow.
func (b *Buffer) DitherMono() {
	// Stage 1: collapse to a single plane.
	gray := make([][]uint8, b.height)
	for y, src := range b.rows {
		line := make([]uint8, b.width)
		if b.channels == 3 {
			for x := 0; x < b.width; x++ {
				i := x * 3
				line[x] = uint8((int(src[i]) + int(src[i+1]) + int(src[i+2])) / 3)
			}
		} else {
			copy(line, src)
		}
		gray[y] = line
	}

	// Stage 2: diffuse. The border predicate guarantees every neighbor
	// write below lands in bounds: x+1 <= width-1, x-1 >= 0, y+1 <= height-1.
	for y := 0; y < b.height; y++ {
		row := gray[y]
		for x := 0; x < b.width; x++ {
			if x == 0 || x == b.width-1 || y == b.height-1 {
				row[x] = 0xFF
				continue
			}
			old := int(row[x])
			var pix uint8
			if old <= 128 {
				pix = 0xFF
			} else {
				pix = 0x00
			}
			err := old - int(pix)
			below := gray[y+1]
			row[x+1] = uint8(int(row[x+1]) + err*7/16)
			below[x+1] = uint8(int(below[x+1]) + err*1/16)
			below[x] = uint8(int(below[x]) + err*5/16)
			below[x-1] = uint8(int(below[x-1]) + err*3/16)
			row[x] = pix
		}
	}

	// Stage 3: replicate into three channels.
	out := make([][]uint8, b.height)
	for y, src := range gray {
		line := make([]uint8, b.width*3)
		for x, v := range src {
			line[x*3] = v
			line[x*3+1] = v
			line[x*3+2] = v
		}
		out[y] = line
	}
	b.rows = out
	b.channels = 3
}

// DitherPalette quantizes the buffer to the given palette with
// Floyd-Steinberg error diffusion, in place. Border pixels (first column,
// last column, last row) are forced to palette entry 0. Interior pixels
// snap to their Nearest palette entry and the per-channel signed error
// spreads with the same 7/16, 3/16, 5/16, 1/16 weights as DitherMono,
// wrapping neighbor bytes on overflow. The traversal is strictly row-major
// and writes only into not-yet-visited cells.
//
// The buffer must be 3-channel; fails with ErrChannelCount otherwise.
func (b *Buffer) DitherPalette(pal Palette) error {
	if b.channels != 3 {
		return fmt.Errorf("%w: palette dithering needs 3 channels, buffer has %d",
			ErrChannelCount, b.channels)
	}

	last := (b.width - 1) * 3
	for y := 0; y < b.height; y++ {
		row := b.rows[y]
		for c := 0; c < b.width*3; c += 3 {
			if c == 0 || c >= last || y == b.height-1 {
				row[c] = pal[0].R
				row[c+1] = pal[0].G
				row[c+2] = pal[0].B
				continue
			}

			old0, old1, old2 := row[c], row[c+1], row[c+2]
			p := pal[pal.Nearest(old0, old1, old2)]

			errR := int(old0) - int(p.R)
			errG := int(old1) - int(p.G)
			errB := int(old2) - int(p.B)

			below := b.rows[y+1]
			row[c+3] = uint8(int(row[c+3]) + errR*7/16)
			row[c+4] = uint8(int(row[c+4]) + errG*7/16)
			row[c+5] = uint8(int(row[c+5]) + errB*7/16)

			below[c+3] = uint8(int(below[c+3]) + errR*1/16)
			below[c+4] = uint8(int(below[c+4]) + errG*1/16)
			below[c+5] = uint8(int(below[c+5]) + errB*1/16)

			below[c] = uint8(int(below[c]) + errR*5/16)
			below[c+1] = uint8(int(below[c+1]) + errG*5/16)
			below[c+2] = uint8(int(below[c+2]) + errB*5/16)

			below[c-3] = uint8(int(below[c-3]) + errR*3/16)
			below[c-2] = uint8(int(below[c-2]) + errG*3/16)
			below[c-1] = uint8(int(below[c-1]) + errB*3/16)

			row[c] = p.R
			row[c+1] = p.G
			row[c+2] = p.B
		}
	}
	return nil
}

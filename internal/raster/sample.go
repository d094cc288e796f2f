package raster

import "fmt"

// Pixel returns the channel samples at column x, row y as a fresh slice.
func (b *Buffer) Pixel(x, y int) ([]uint8, error) {
	if y < 0 || y >= b.height {
		return nil, fmt.Errorf("%w: y=%d, height=%d", ErrOutOfRange, y, b.height)
	}
	if x < 0 || x >= b.width {
		return nil, fmt.Errorf("%w: x=%d, width=%d", ErrOutOfRange, x, b.width)
	}
	px := make([]uint8, b.channels)
	copy(px, b.rows[y][x*b.channels:(x+1)*b.channels])
	return px, nil
}

// Luminance returns an approximate perceptual luminance for the pixel at
// (x, y). Grayscale buffers return the sample itself; RGB buffers use the
// fast weighting (2R + 3G + B) / 6, which is cheaper than the ITU formula
// and kept for output compatibility. Any other channel count yields 0.
func (b *Buffer) Luminance(x, y int) (uint8, error) {
	px, err := b.Pixel(x, y)
	if err != nil {
		return 0, err
	}
	switch len(px) {
	case 1:
		return px[0], nil
	case 3:
		return uint8((int(px[0])*2 + int(px[1])*3 + int(px[2])) / 6), nil
	}
	return 0, nil
}

// Average returns the per-channel mean over a boxSize x boxSize window with
// its top-left corner at (x, y). When the window would run past the right or
// bottom edge, its origin is moved back so the window stays fully inside the
// buffer; the relocated window is sampled without error. Sums accumulate in
// wide integers and the division floors.
func (b *Buffer) Average(x, y, boxSize int) ([]uint8, error) {
	if boxSize <= 0 || boxSize > b.width {
		return nil, fmt.Errorf("%w: box size %d, width %d", ErrOutOfRange, boxSize, b.width)
	}
	if boxSize > b.height {
		return nil, fmt.Errorf("%w: box size %d, height %d", ErrOutOfRange, boxSize, b.height)
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: origin (%d,%d)", ErrOutOfRange, x, y)
	}
	if x+boxSize >= b.width {
		x = b.width - boxSize
	}
	if y+boxSize >= b.height {
		y = b.height - boxSize
	}

	sums := make([]uint64, b.channels)
	for row := y; row < y+boxSize; row++ {
		line := b.rows[row]
		for col := x; col < x+boxSize; col++ {
			for n := 0; n < b.channels; n++ {
				sums[n] += uint64(line[col*b.channels+n])
			}
		}
	}

	area := uint64(boxSize) * uint64(boxSize)
	avg := make([]uint8, b.channels)
	for n, s := range sums {
		avg[n] = uint8(s / area)
	}
	return avg, nil
}

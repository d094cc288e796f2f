package raster

import "fmt"

// Resize returns a buffer resampled to newWidth, shrinking or expanding as
// needed. The height scales by the same factor. Resizing to the current
// width returns the receiver unchanged.
func (b *Buffer) Resize(newWidth int) (*Buffer, error) {
	switch {
	case newWidth < b.width:
		return b.Shrink(newWidth)
	case newWidth > b.width:
		return b.Expand(newWidth)
	}
	return b, nil
}

// Shrink area-averages the buffer down to newWidth in a single row-major
// pass over the source, accumulating into per-target-column running totals
// instead of box-sampling each output pixel. This keeps the source rows in
// cache and is several times faster on large images.
//
// Output values are part of the contract: the flattened source column col
// (channels interleaved) lands in accumulator slot int(scale*float32(col)),
// and an output row is emitted whenever int(scale*float32(row)) advances,
// dividing each slot by its sample count. The final partial accumulator is
// flushed after the scan. The result height is however many rows were
// emitted; float32 scale arithmetic is deliberate.
//
// Returns the receiver unchanged when newWidth >= width. Fails with
// ErrOutOfRange when newWidth is zero or negative.
func (b *Buffer) Shrink(newWidth int) (*Buffer, error) {
	if newWidth >= b.width {
		return b, nil
	}
	if newWidth <= 0 {
		return nil, fmt.Errorf("%w: new width %d", ErrOutOfRange, newWidth)
	}

	scale := float32(newWidth) / float32(b.width)
	rowLen := newWidth * b.channels
	totals := make([]uint64, rowLen)
	counts := make([]uint64, rowLen)

	flush := func() []uint8 {
		line := make([]uint8, rowLen)
		for i := range line {
			line[i] = uint8(totals[i] / counts[i])
			totals[i] = 0
			counts[i] = 0
		}
		return line
	}

	newRows := make([][]uint8, 0, int(scale*float32(b.height))+1)
	oldRow := 0
	for row := 0; row < b.height; row++ {
		src := b.rows[row]
		for col := 0; col < b.width*b.channels; col++ {
			idx := int(scale * float32(col))
			totals[idx] += uint64(src[col])
			counts[idx]++
		}
		if int(scale*float32(row)) > oldRow {
			oldRow = int(scale * float32(row))
			newRows = append(newRows, flush())
		}
	}
	// Rows scanned since the last emission are still in the accumulators.
	if counts[0] > 0 {
		newRows = append(newRows, flush())
	}

	return FromRows(b.channels, newRows)
}

// Expand upsamples the buffer to newWidth by nearest neighbor: every output
// pixel copies the channels of source pixel (col/scale, row/scale), no
// interpolation. Returns the receiver unchanged when newWidth <= width.
func (b *Buffer) Expand(newWidth int) (*Buffer, error) {
	if newWidth <= b.width {
		return b, nil
	}

	scale := float32(newWidth) / float32(b.width)
	newHeight := int(scale * float32(b.height))
	newRows := make([][]uint8, 0, newHeight)

	for row := 0; row < newHeight; row++ {
		oldRow := int(float32(row) / scale)
		if oldRow >= b.height {
			oldRow = b.height - 1
		}
		src := b.rows[oldRow]
		line := make([]uint8, newWidth*b.channels)
		for col := 0; col < newWidth; col++ {
			oldCol := int(float32(col) / scale)
			if oldCol >= b.width {
				oldCol = b.width - 1
			}
			copy(line[col*b.channels:(col+1)*b.channels],
				src[oldCol*b.channels:(oldCol+1)*b.channels])
		}
		newRows = append(newRows, line)
	}

	return FromRows(b.channels, newRows)
}

package raster

import "fmt"

// Buffer is a decoded raster image: height rows of width*channels bytes.
//
// Invariants, enforced by the constructors:
//   - width > 0, height > 0
//   - channels is 1 (grayscale) or 3 (interleaved RGB)
//   - len(rows) == height and every row has exactly width*channels bytes
type Buffer struct {
	width    int
	height   int
	channels int
	rows     [][]uint8
}

// New allocates a zero-filled buffer with the given dimensions.
func New(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrOutOfRange, width, height)
	}
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCount, channels)
	}
	rows := make([][]uint8, height)
	for y := range rows {
		rows[y] = make([]uint8, width*channels)
	}
	return &Buffer{width: width, height: height, channels: channels, rows: rows}, nil
}

// FromRows builds a buffer that takes ownership of rows. Every row must have
// the same length, which must be a positive multiple of channels.
func FromRows(channels int, rows [][]uint8) (*Buffer, error) {
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCount, channels)
	}
	if len(rows) == 0 || len(rows[0]) == 0 || len(rows[0])%channels != 0 {
		return nil, fmt.Errorf("%w: empty or misaligned row data", ErrOutOfRange)
	}
	width := len(rows[0]) / channels
	for y, row := range rows {
		if len(row) != width*channels {
			return nil, fmt.Errorf("%w: row %d has %d bytes, want %d",
				ErrOutOfRange, y, len(row), width*channels)
		}
	}
	return &Buffer{width: width, height: len(rows), channels: channels, rows: rows}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Channels returns the number of samples per pixel (1 or 3).
func (b *Buffer) Channels() int { return b.channels }

// Row returns the raw bytes of row y without copying. The slice must be
// treated as read-only unless the caller owns the buffer exclusively.
func (b *Buffer) Row(y int) []uint8 { return b.rows[y] }

// Clone returns a deep copy of the buffer. The pixel payload is never shared
// between copies; in-place operations on one never affect the other.
func (b *Buffer) Clone() *Buffer {
	rows := make([][]uint8, b.height)
	for y, src := range b.rows {
		row := make([]uint8, len(src))
		copy(row, src)
		rows[y] = row
	}
	return &Buffer{width: b.width, height: b.height, channels: b.channels, rows: rows}
}

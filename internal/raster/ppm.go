package raster

import (
	"fmt"
	"io"
)

// WritePPM writes the buffer as binary PPM (P6): a single-line header
// followed by the raw interleaved RGB rows. The format is a fixed debugging
// sink, not a configurable export. Only 3-channel buffers are valid P6
// payloads; fails with ErrChannelCount otherwise.
func (b *Buffer) WritePPM(w io.Writer) error {
	if b.channels != 3 {
		return fmt.Errorf("%w: PPM export needs 3 channels, buffer has %d",
			ErrChannelCount, b.channels)
	}
	if _, err := fmt.Fprintf(w, "P6 %d %d 255\n", b.width, b.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for y, row := range b.rows {
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write PPM row %d: %w", y, err)
		}
	}
	return nil
}

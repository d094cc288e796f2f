package codec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/marengo/rasterkit/internal/raster"
)

// SavePPM dumps the buffer to path as binary PPM for debugging and
// visualization. Raw dumps of large frames get big, so paths ending in
// ".gz" are gzip-compressed on the way out.
func SavePPM(path string, b *raster.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := b.WritePPM(w); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("%w: failed to finish %s: %v", ErrIO, path, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", ErrIO, path, err)
	}
	return nil
}

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/jpegn"

	"github.com/marengo/rasterkit/internal/raster"
)

// Sentinel errors for the codec boundary.
var (
	// ErrFormat indicates the input bytes are not a decodable image, or an
	// output format is not supported.
	ErrFormat = errors.New("invalid image format")

	// ErrIO indicates the underlying source or sink failed.
	ErrIO = errors.New("i/o failure")
)

// Decode reads an encoded image from r and returns it as a raster.Buffer.
// JPEG payloads (SOI-sniffed) go through the jpegn decoder with EXIF
// auto-rotation; other formats go through the imaging decoder. Grayscale
// sources produce 1-channel buffers, everything else 3-channel.
func Decode(r io.Reader) (*raster.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read image data: %v", ErrIO, err)
	}

	var img image.Image
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		img, err = jpegn.Decode(bytes.NewReader(data), &jpegn.Options{AutoRotate: true})
	} else {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return FromImage(img)
}

// DecodeFile decodes the image at path.
func DecodeFile(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the buffer to w in the named format ("jpeg", "png", "gif",
// "tif", "bmp"). The quality parameter applies to JPEG output and is
// clamped to [0, 100] before use.
func Encode(w io.Writer, b *raster.Buffer, format string, quality int) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFormat, format, err)
	}
	if quality < 0 {
		quality = 0
	}
	if quality > 100 {
		quality = 100
	}
	if err := imaging.Encode(w, ToImage(b), f, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", ErrIO, format, err)
	}
	return nil
}

// EncodeFile writes the buffer to path, deriving the format from the file
// extension.
func EncodeFile(path string, b *raster.Buffer, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	if err := Encode(f, b, filepath.Ext(path), quality); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %v", ErrIO, path, err)
	}
	return nil
}

// FromImage converts a decoded image into a raster.Buffer. *image.Gray
// becomes a 1-channel buffer; every other color model is sampled through
// the color interface into interleaved RGB, scaling 16-bit components down
// to 8-bit.
func FromImage(img image.Image) (*raster.Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		rows := make([][]uint8, h)
		for y := 0; y < h; y++ {
			row := make([]uint8, w)
			copy(row, gray.Pix[y*gray.Stride:y*gray.Stride+w])
			rows[y] = row
		}
		return raster.FromRows(1, rows)
	}

	rows := make([][]uint8, h)
	for y := 0; y < h; y++ {
		row := make([]uint8, w*3)
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x*3] = uint8(r >> 8)
			row[x*3+1] = uint8(g >> 8)
			row[x*3+2] = uint8(b >> 8)
		}
		rows[y] = row
	}
	return raster.FromRows(3, rows)
}

// ToImage converts a buffer into a standard image for encoding: 1-channel
// buffers become *image.Gray, 3-channel buffers *image.NRGBA with full
// alpha. The pixel data is copied, not aliased.
func ToImage(b *raster.Buffer) image.Image {
	w, h := b.Width(), b.Height()

	if b.Channels() == 1 {
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], b.Row(y))
		}
		return img
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := b.Row(y)
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			img.Pix[i] = row[x*3]
			img.Pix[i+1] = row[x*3+1]
			img.Pix[i+2] = row[x*3+2]
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

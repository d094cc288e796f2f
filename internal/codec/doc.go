// Package codec is the boundary between raster buffers and encoded image
// bytes. It wraps the external decoders and encoders (gen2brain/jpegn for
// JPEG input, disintegration/imaging for everything else and for output) so
// the core in internal/raster never touches bitstreams or files.
//
// Decode failures wrap ErrFormat, I/O failures wrap ErrIO; both are
// fail-fast with no partial buffers returned.
//
// The Cache type keeps decoded buffers keyed by path and is safe for
// concurrent use. Cached buffers are shared: callers that run an in-place
// operation (dithering) must Clone the loaded buffer first.
package codec

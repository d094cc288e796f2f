// Package raster implements the pixel-buffer core: sampling, resampling,
// and error-diffusion dithering over row-major 8-bit image data.
//
// A Buffer holds height rows of width*channels bytes, with channels either
// 1 (grayscale) or 3 (interleaved RGB). All operations use a coordinate
// system where (0,0) is the top-left pixel, X increases rightward, and Y
// increases downward.
//
// # Ownership
//
// Resampling operations allocate a fresh Buffer and never alias the source
// rows. The dithering operations mutate their receiver in place: error
// diffusion needs to read neighbor cells that already reflect earlier
// updates within the same pass, so the traversal is strictly row-major,
// left to right, and writes only into not-yet-visited cells. Callers that
// need to keep the original should Clone first.
//
// # Arithmetic
//
// Several operations pin the integer-truncation order (per-term err*7/16
// division, floor averaging, float32 scale indexing) so that output stays
// byte-for-byte stable across releases. Do not "fix" these to
// mathematically nicer forms.
//
// # Error Handling
//
// Functions return errors wrapping ErrOutOfRange for coordinates or sizes
// outside buffer bounds, and ErrChannelCount for operations that require a
// specific channel count. Errors are fail-fast; no partial results.
package raster

// Package raster provides the pixel buffer type consumed by the feature
// detection and tracking-quality engines.
//
// A Raster is a caller-owned, read-only view of a decoded image: width,
// height, and interleaved 8-bit RGBA bytes (4 per pixel, row-major). The
// engine never decodes image files itself; decoding belongs to the caller.
// The Open helpers in this package exist for callers (and the command-line
// tool) that start from a file on disk.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// The pixel at (x, y) occupies bytes [4*(y*Width+x), 4*(y*Width+x)+4).
//
// # Grayscale Conversion
//
// Grayscale() derives a transient width*height luminance buffer using the
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B), rounded to the
// nearest integer. Alpha is ignored. The buffer is recomputed on every
// call and never cached; callers that need it twice should hold on to it.
//
// # Error Handling
//
// Validate reports ErrInvalidDimensions when the width or height is not
// positive or when the pixel buffer length does not match width*height*4.
// Every engine entry point validates its input raster before touching the
// pixel data, so malformed buffers fail fast instead of producing a
// degenerate result.
//
// # Thread Safety
//
// A Raster holds no internal state and is never mutated by this module.
// Concurrent reads of the same Raster, and concurrent analysis of
// different Rasters, are safe without coordination.
package raster

package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ErrInvalidDimensions reports a raster whose dimensions are not positive
// or whose pixel buffer length disagrees with width*height*4.
var ErrInvalidDimensions = errors.New("invalid raster dimensions")

// Raster is a decoded RGBA image: interleaved 8-bit RGBA bytes in
// row-major order, 4 bytes per pixel. The buffer is caller-owned and
// treated as read-only by every function in this module.
type Raster struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Pix holds the interleaved RGBA bytes, length Width*Height*4.
	Pix []uint8 `json:"-"`
}

// New wraps an RGBA byte buffer in a Raster after validating it.
//
// Returns ErrInvalidDimensions (wrapped with detail) if width or height
// is not positive or len(pix) != width*height*4.
func New(width, height int, pix []uint8) (*Raster, error) {
	r := &Raster{Width: width, Height: height, Pix: pix}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the raster's dimensions against its pixel buffer.
//
// A nil return guarantees that every index computed as 4*(y*Width+x) for
// 0 <= x < Width, 0 <= y < Height is in range.
func (r *Raster) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if want := r.Width * r.Height * 4; len(r.Pix) != want {
		return fmt.Errorf("%w: pixel buffer is %d bytes, want %d for %dx%d RGBA",
			ErrInvalidDimensions, len(r.Pix), want, r.Width, r.Height)
	}
	return nil
}

// Grayscale converts the raster to a width*height luminance buffer using
// the ITU-R BT.601 weights:
//
//	gray[i] = round(0.299*R + 0.587*G + 0.114*B)
//
// Alpha is ignored. The returned buffer is freshly allocated on every
// call; the raster itself is not modified. The caller must have validated
// the raster (Validate or New) before calling.
func (r *Raster) Grayscale() []uint8 {
	gray := make([]uint8, r.Width*r.Height)
	for i := range gray {
		o := i * 4
		lum := 0.299*float64(r.Pix[o]) + 0.587*float64(r.Pix[o+1]) + 0.114*float64(r.Pix[o+2])
		gray[i] = uint8(math.Round(lum))
	}
	return gray
}

// FromImage converts any image.Image into a Raster.
//
// The image is cloned into a contiguous NRGBA buffer, so the returned
// Raster does not alias the source image's pixels. The clone also
// normalizes exotic source types (YCbCr JPEG planes, paletted GIFs,
// 16-bit PNGs) into plain interleaved 8-bit RGBA.
func FromImage(img image.Image) *Raster {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Raster{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}

package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// OpenImage loads an image file from disk, applying EXIF auto-orientation.
//
// Supported formats are PNG, JPEG, GIF, TIFF and BMP. When maxDim is
// positive and either side of the decoded image exceeds it, the image is
// downscaled with Lanczos resampling to fit within maxDim x maxDim while
// preserving aspect ratio. Uploaded marker photos straight off a phone
// camera are routinely 4000+ pixels wide; analyzing them at full size
// costs quadratic time for no scoring benefit.
//
// Pass maxDim <= 0 to disable downscaling.
func OpenImage(path string, maxDim int) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	b := img.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}
	return img, nil
}

// Open loads an image file and converts it to a Raster in one step.
//
// See OpenImage for format support and the meaning of maxDim.
func Open(path string, maxDim int) (*Raster, error) {
	img, err := OpenImage(path, maxDim)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

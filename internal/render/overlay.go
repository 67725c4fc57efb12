// Package render draws detection results back onto the source image so a
// dashboard (or a developer) can see what the tracker will lock onto.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/markerforge/vision/internal/features"
)

const (
	minMarkerRadius = 3.0
	maxMarkerRadius = 8.0
)

// Overlay returns a copy of img with every feature drawn as a circle.
//
// Marker radius grows with feature strength, and the stroke color runs a
// hue ramp from blue (weak) to red (strong). Features with a non-zero
// orientation get a tick from the center to the circle's edge showing the
// direction. The source image is not modified.
func Overlay(img image.Image, feats []features.Feature) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawImage(img, 0, 0)
	dc.SetLineWidth(1.5)

	for _, f := range feats {
		px := f.X * float64(w)
		py := f.Y * float64(h)
		radius := minMarkerRadius + (maxMarkerRadius-minMarkerRadius)*clamp01(f.Strength)

		dc.SetColor(strengthColor(f.Strength))
		dc.DrawCircle(px, py, radius)
		dc.Stroke()

		if f.Orientation != 0 {
			dc.DrawLine(px, py,
				px+radius*math.Cos(f.Orientation),
				py+radius*math.Sin(f.Orientation))
			dc.Stroke()
		}
	}
	return dc.Image()
}

// strengthColor maps strength 0..1 onto a blue-to-red hue ramp.
func strengthColor(strength float64) colorful.Color {
	hue := 240 * (1 - clamp01(strength))
	return colorful.Hsv(hue, 1, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

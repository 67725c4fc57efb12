package features

import "math"

// harrisOffset is the structure-tensor window half-width (3x3 window).
const harrisOffset = 1

// HarrisDetector finds corners from the local gradient structure tensor.
type HarrisDetector struct {
	// K is the empirical trace-penalty constant, typically 0.04-0.06.
	K float64

	// Threshold is the minimum response R for a pixel to be emitted.
	Threshold float64
}

// NewHarrisDetector returns a detector with the marker-validation
// defaults: k = 0.04, threshold = 0.01.
func NewHarrisDetector() *HarrisDetector {
	return &HarrisDetector{K: 0.04, Threshold: 0.01}
}

// Detect computes the Harris corner response at every interior pixel and
// emits a feature wherever it exceeds the threshold.
//
// # Algorithm
//
//  1. Intensities are normalized to [0, 1] and horizontal/vertical
//     gradients Ix, Iy computed with the 3x3 Sobel kernels.
//  2. Per pixel, the structure tensor entries Ixx = sum(Ix^2),
//     Iyy = sum(Iy^2), Ixy = sum(Ix*Iy) are accumulated over a 3x3 window.
//  3. Response R = (Ixx*Iyy - Ixy^2) - k*(Ixx + Iyy)^2.
//
// Orientation is the gradient direction atan2(Iy, Ix) at the pixel.
// Strength is min(R, 1): responses above 1 saturate, so many distinct
// strong corners share strength exactly 1.0. That flattens strength-based
// ranking among Harris corners but is the engine's reference behavior;
// the hybrid merge leans on FAST's more graduated scores for ranking.
//
// There is no built-in suppression; dense corner clusters are thinned
// only by the threshold and by the hybrid merge downstream.
func (d *HarrisDetector) Detect(gray []uint8, width, height int) []Feature {
	ix := make([]float64, width*height)
	iy := make([]float64, width*height)

	sobelX := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := float64(gray[(y+ky)*width+(x+kx)]) / 255.0
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			ix[y*width+x] = gx
			iy[y*width+x] = gy
		}
	}

	features := []Feature{}
	for y := 1 + harrisOffset; y < height-1-harrisOffset; y++ {
		for x := 1 + harrisOffset; x < width-1-harrisOffset; x++ {
			var ixx, iyy, ixy float64
			for dy := -harrisOffset; dy <= harrisOffset; dy++ {
				for dx := -harrisOffset; dx <= harrisOffset; dx++ {
					gx := ix[(y+dy)*width+(x+dx)]
					gy := iy[(y+dy)*width+(x+dx)]
					ixx += gx * gx
					iyy += gy * gy
					ixy += gx * gy
				}
			}

			trace := ixx + iyy
			response := (ixx*iyy - ixy*ixy) - d.K*trace*trace
			if response <= d.Threshold {
				continue
			}

			features = append(features, Feature{
				X:           float64(x) / float64(width),
				Y:           float64(y) / float64(height),
				Scale:       1.0,
				Orientation: math.Atan2(iy[y*width+x], ix[y*width+x]),
				Strength:    math.Min(response, 1.0),
			})
		}
	}
	return features
}

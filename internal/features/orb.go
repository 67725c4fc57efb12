package features

import "math"

// ORBDetector augments FAST keypoints with an intensity-centroid
// orientation and a compact rotation-aware descriptor (an Oriented-FAST
// arrangement; the full BRIEF descriptor and any cross-frame matching
// live outside this engine).
type ORBDetector struct {
	// FAST is the underlying keypoint detector. ORB's default threshold
	// (15) is laxer than plain FAST's so the descriptor stage has more
	// candidates to work with.
	FAST *FASTDetector

	// PatchSize is the side of the square patch sampled around each
	// keypoint for moments and descriptor, default 31.
	PatchSize int
}

// NewORBDetector returns an ORB detector with FAST threshold 15 and a
// 31-pixel patch.
func NewORBDetector() *ORBDetector {
	return &ORBDetector{
		FAST:      &FASTDetector{Threshold: 15, NonMaxSuppression: true},
		PatchSize: 31,
	}
}

// Detect runs the wrapped FAST detector, then orients and describes each
// keypoint.
//
// # Orientation
//
// The image moments m00, m10, m01 are accumulated over the patch with
// coordinates relative to the keypoint. When m00 > 0 the orientation is
// the intensity-centroid angle atan2(m01/m00, m10/m00); otherwise the
// FAST orientation (0) is kept.
//
// # Descriptor
//
// Eight directions spaced 45 degrees apart, each rotated by the feature
// orientation, are sampled at radii 0, 2, 4, ... up to PatchSize/2. Each
// descriptor element is the mean sampled intensity along one direction,
// normalized to [0, 1]. Samples falling outside the image are skipped.
func (d *ORBDetector) Detect(gray []uint8, width, height int) []Feature {
	features := d.FAST.Detect(gray, width, height)
	half := d.PatchSize / 2

	for i := range features {
		f := &features[i]
		px := int(math.Round(f.X * float64(width)))
		py := int(math.Round(f.Y * float64(height)))

		var m00, m10, m01 float64
		for dy := -half; dy <= half; dy++ {
			sy := py + dy
			if sy < 0 || sy >= height {
				continue
			}
			for dx := -half; dx <= half; dx++ {
				sx := px + dx
				if sx < 0 || sx >= width {
					continue
				}
				v := float64(gray[sy*width+sx])
				m00 += v
				m10 += float64(dx) * v
				m01 += float64(dy) * v
			}
		}
		if m00 > 0 {
			f.Orientation = math.Atan2(m01/m00, m10/m00)
		}

		f.Descriptor = describePatch(gray, width, height, px, py, f.Orientation, half)
	}
	return features
}

// describePatch samples mean intensities along 8 rotated directions.
func describePatch(gray []uint8, width, height, px, py int, orientation float64, half int) []float64 {
	desc := make([]float64, 8)
	for dir := 0; dir < 8; dir++ {
		angle := orientation + float64(dir)*math.Pi/4
		sin, cos := math.Sincos(angle)

		var sum float64
		var n int
		for r := 0; r <= half; r += 2 {
			sx := px + int(math.Round(float64(r)*cos))
			sy := py + int(math.Round(float64(r)*sin))
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}
			sum += float64(gray[sy*width+sx])
			n++
		}
		if n > 0 {
			desc[dir] = sum / float64(n) / 255.0
		}
	}
	return desc
}

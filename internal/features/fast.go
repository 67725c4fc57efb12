package features

// circleOffsets is the 16-point Bresenham circle of radius 3 used by the
// segment test, starting at 12 o'clock and proceeding clockwise.
var circleOffsets = [16][2]int{
	{0, -3}, {1, -3}, {2, -2}, {3, -1},
	{3, 0}, {3, 1}, {2, 2}, {1, 3},
	{0, 3}, {-1, 3}, {-2, 2}, {-3, 1},
	{-3, 0}, {-3, -1}, {-2, -2}, {-1, -3},
}

const (
	// fastMargin is the border skipped so the full circle stays in bounds.
	fastMargin = 3

	// fastArc is the minimum contiguous run length for FAST-9.
	fastArc = 9

	// fastMaxScore is the largest possible raw cornerness score:
	// 16 circle samples, each differing from the center by at most 255.
	fastMaxScore = 16.0 * 255.0
)

// FASTDetector finds corners with the Features-from-Accelerated-Segment
// test (FAST-9 variant).
type FASTDetector struct {
	// Threshold is the intensity margin a circle sample must clear, in
	// either direction, to count as brighter or darker than the center.
	Threshold int

	// NonMaxSuppression keeps only corners whose score is not exceeded by
	// any neighbor within a 7x7 window. Equal-score neighbors survive
	// together.
	NonMaxSuppression bool
}

// NewFASTDetector returns a detector with the defaults used for marker
// validation: threshold 20 with non-maximum suppression enabled.
func NewFASTDetector() *FASTDetector {
	return &FASTDetector{Threshold: 20, NonMaxSuppression: true}
}

// Detect scans every interior pixel for FAST-9 corners.
//
// Parameters:
//   - gray: luminance buffer, one byte per pixel, row-major.
//   - width, height: buffer dimensions. len(gray) must be width*height.
//
// Returns detected features with positions normalized to [0, 1],
// orientation 0, scale 1, and strength equal to the raw cornerness score
// divided by its maximum (16*255).
//
// # Algorithm
//
//  1. Quick reject: sample the four compass points of the circle
//     (positions 0, 4, 8, 12). Unless at least 3 of the 4 agree in
//     direction (all brighter than center+threshold, or all darker than
//     center-threshold), the pixel cannot contain a 9-point arc and is
//     skipped without sampling the full circle.
//  2. Segment test: check all 16 rotations of the circle for a run of at
//     least 9 contiguous samples uniformly brighter than center+threshold
//     or uniformly darker than center-threshold.
//  3. Score: sum of |sample - center| over all 16 circle samples.
//  4. Optional non-maximum suppression over the dense score map.
//
// A 3-pixel margin is excluded so the circle never leaves the image.
func (d *FASTDetector) Detect(gray []uint8, width, height int) []Feature {
	threshold := d.Threshold

	scores := make([]float64, width*height)
	type candidate struct {
		x, y  int
		score float64
	}
	var candidates []candidate

	for y := fastMargin; y < height-fastMargin; y++ {
		for x := fastMargin; x < width-fastMargin; x++ {
			center := int(gray[y*width+x])

			// Quick reject on the compass points.
			brighter, darker := 0, 0
			for _, k := range [4]int{0, 4, 8, 12} {
				off := circleOffsets[k]
				v := int(gray[(y+off[1])*width+(x+off[0])])
				if v > center+threshold {
					brighter++
				} else if v < center-threshold {
					darker++
				}
			}
			if brighter < 3 && darker < 3 {
				continue
			}

			var samples [16]int
			for i, off := range circleOffsets {
				samples[i] = int(gray[(y+off[1])*width+(x+off[0])])
			}

			if !hasContiguousArc(samples, center, threshold) {
				continue
			}

			score := 0.0
			for _, v := range samples {
				if v > center {
					score += float64(v - center)
				} else {
					score += float64(center - v)
				}
			}
			scores[y*width+x] = score
			candidates = append(candidates, candidate{x: x, y: y, score: score})
		}
	}

	features := make([]Feature, 0, len(candidates))
	for _, c := range candidates {
		if d.NonMaxSuppression && !isLocalMaximum(scores, width, height, c.x, c.y, c.score) {
			continue
		}
		features = append(features, Feature{
			X:        float64(c.x) / float64(width),
			Y:        float64(c.y) / float64(height),
			Scale:    1.0,
			Strength: c.score / fastMaxScore,
		})
	}
	return features
}

// hasContiguousArc reports whether any rotation of the circle contains a
// run of fastArc samples uniformly brighter than center+threshold or
// uniformly darker than center-threshold.
func hasContiguousArc(samples [16]int, center, threshold int) bool {
	for start := 0; start < 16; start++ {
		allBrighter, allDarker := true, true
		for k := 0; k < fastArc; k++ {
			v := samples[(start+k)%16]
			if v <= center+threshold {
				allBrighter = false
			}
			if v >= center-threshold {
				allDarker = false
			}
			if !allBrighter && !allDarker {
				break
			}
		}
		if allBrighter || allDarker {
			return true
		}
	}
	return false
}

// isLocalMaximum reports whether no pixel within a (2*fastMargin+1)^2
// window has a strictly greater score. Ties survive, so two adjacent
// equal-score corners are both kept.
func isLocalMaximum(scores []float64, width, height, x, y int, score float64) bool {
	for dy := -fastMargin; dy <= fastMargin; dy++ {
		for dx := -fastMargin; dx <= fastMargin; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if scores[ny*width+nx] > score {
				return false
			}
		}
	}
	return true
}

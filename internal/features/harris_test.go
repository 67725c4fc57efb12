package features

import (
	"math"
	"testing"
)

func TestHarrisDetector_UniformImage(t *testing.T) {
	gray := uniformGray(64, 64, 128)

	feats := NewHarrisDetector().Detect(gray, 64, 64)
	if len(feats) != 0 {
		t.Errorf("uniform image: got %d features, want 0", len(feats))
	}
}

func TestHarrisDetector_DiamondCorners(t *testing.T) {
	gray := diamondGray(128, 128, 64, 64, 20)

	feats := NewHarrisDetector().Detect(gray, 128, 128)
	if len(feats) == 0 {
		t.Fatal("diamond: got 0 features, want corner responses at the tips")
	}
}

func TestHarrisDetector_StrengthClamp(t *testing.T) {
	// High-contrast structure drives the raw response far above 1; the
	// emitted strength must saturate at exactly 1.0, never exceed it.
	gray := checkerboardGray(64, 64, 5)

	feats := NewHarrisDetector().Detect(gray, 64, 64)
	if len(feats) == 0 {
		t.Fatal("checkerboard: got 0 Harris features")
	}
	sawSaturated := false
	for _, f := range feats {
		if f.Strength > 1.0 {
			t.Fatalf("strength %v exceeds 1.0", f.Strength)
		}
		if f.Strength == 1.0 {
			sawSaturated = true
		}
	}
	if !sawSaturated {
		t.Error("expected at least one saturated strength on a high-contrast board")
	}
}

func TestHarrisDetector_Orientation(t *testing.T) {
	gray := diamondGray(128, 128, 64, 64, 20)

	for _, f := range NewHarrisDetector().Detect(gray, 128, 128) {
		if math.IsNaN(f.Orientation) {
			t.Fatal("orientation is NaN")
		}
		if f.Orientation < -math.Pi || f.Orientation > math.Pi {
			t.Errorf("orientation %v outside [-pi, pi]", f.Orientation)
		}
	}
}

func TestHarrisDetector_ThresholdFilters(t *testing.T) {
	gray := noiseGray(64, 64, 4)

	low := (&HarrisDetector{K: 0.04, Threshold: 0.01}).Detect(gray, 64, 64)
	high := (&HarrisDetector{K: 0.04, Threshold: 10.0}).Detect(gray, 64, 64)

	if len(high) > len(low) {
		t.Errorf("threshold 10.0 found %d corners, threshold 0.01 found %d", len(high), len(low))
	}
}

package features

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/markerforge/vision/internal/raster"
)

// solidRaster builds a width x height raster of a single RGB color.
func solidRaster(width, height int, r, g, b uint8) *raster.Raster {
	pix := make([]uint8, width*height*4)
	for i := 0; i < width*height; i++ {
		pix[4*i] = r
		pix[4*i+1] = g
		pix[4*i+2] = b
		pix[4*i+3] = 255
	}
	return &raster.Raster{Width: width, Height: height, Pix: pix}
}

// noiseRaster builds a deterministic random-RGB raster.
func noiseRaster(width, height int, seed int64) *raster.Raster {
	rnd := rand.New(rand.NewSource(seed))
	pix := make([]uint8, width*height*4)
	for i := 0; i < width*height; i++ {
		pix[4*i] = uint8(rnd.Intn(256))
		pix[4*i+1] = uint8(rnd.Intn(256))
		pix[4*i+2] = uint8(rnd.Intn(256))
		pix[4*i+3] = 255
	}
	return &raster.Raster{Width: width, Height: height, Pix: pix}
}

func TestDetect_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name   string
		raster *raster.Raster
	}{
		{"zero width", &raster.Raster{Width: 0, Height: 10, Pix: []uint8{}}},
		{"negative height", &raster.Raster{Width: 10, Height: -1, Pix: []uint8{}}},
		{"short buffer", &raster.Raster{Width: 10, Height: 10, Pix: make([]uint8, 10)}},
		{"long buffer", &raster.Raster{Width: 2, Height: 2, Pix: make([]uint8, 17)}},
	}
	for _, tc := range cases {
		_, err := Detect(tc.raster, DefaultOptions())
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if !errors.Is(err, raster.ErrInvalidDimensions) {
			t.Errorf("%s: error %v does not wrap ErrInvalidDimensions", tc.name, err)
		}
	}
}

func TestDetect_SolidGray(t *testing.T) {
	r := solidRaster(256, 256, 128, 128, 128)

	feats, err := Detect(r, DefaultOptions())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(feats) != 0 {
		t.Errorf("solid gray: got %d features, want 0", len(feats))
	}
}

func TestDetect_EmptyResultMarshalsAsArray(t *testing.T) {
	r := solidRaster(64, 64, 128, 128, 128)

	for _, alg := range []Algorithm{AlgorithmFAST, AlgorithmHarris, AlgorithmORB, AlgorithmHybrid} {
		feats, err := Detect(r, Options{Algorithm: alg})
		if err != nil {
			t.Fatalf("%s: Detect failed: %v", alg, err)
		}
		if feats == nil {
			t.Errorf("%s: featureless result is nil, want empty slice", alg)
			continue
		}
		out, err := json.Marshal(feats)
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", alg, err)
		}
		if string(out) != "[]" {
			t.Errorf("%s: featureless result marshals as %s, want []", alg, out)
		}
	}
}

func TestDetect_Noise(t *testing.T) {
	r := noiseRaster(256, 256, 11)

	feats, err := Detect(r, DefaultOptions())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(feats) != 500 {
		t.Errorf("noise: got %d features, want the 500-feature cap to bind", len(feats))
	}
}

func TestDetect_ZeroOptionsGetDefaults(t *testing.T) {
	r := noiseRaster(64, 64, 12)

	feats, err := Detect(r, Options{})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(feats) == 0 {
		t.Fatal("zero options detected nothing; defaults not applied")
	}
	if len(feats) > 500 {
		t.Errorf("default MaxFeatures not enforced: got %d", len(feats))
	}
}

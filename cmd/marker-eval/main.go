// Command marker-eval scores an image's suitability as an AR tracking
// marker.
//
// It decodes the image, detects features, evaluates tracking quality, and
// prints a JSON report to stdout. Logs go to stderr so the report stays
// machine-readable. The score is informational; gate decisions belong to
// the upload workflow that calls this.
//
// Usage:
//
//	marker-eval [flags] <image>
//
// An optional -overlay path writes a PNG of the input with the detected
// features drawn on it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"

	"github.com/markerforge/vision/internal/features"
	"github.com/markerforge/vision/internal/quality"
	"github.com/markerforge/vision/internal/raster"
	"github.com/markerforge/vision/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// report is the JSON document written to stdout.
type report struct {
	Source   string                   `json:"source"`
	Width    int                      `json:"width"`
	Height   int                      `json:"height"`
	Features []features.Feature       `json:"features"`
	Quality  *quality.TrackingQuality `json:"quality"`
}

func main() {
	algorithm := flag.String("algorithm", "hybrid", "detection algorithm: fast, harris, orb, or hybrid")
	maxFeatures := flag.Int("max-features", 500, "maximum number of features to keep")
	fit := flag.Int("fit", 2048, "downscale images whose longest side exceeds this many pixels (0 disables)")
	overlayPath := flag.String("overlay", "", "write a feature-overlay PNG to this path")
	pretty := flag.Bool("pretty", false, "indent the JSON report")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("marker-eval %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&nested.Formatter{
		TimestampFormat: "15:04:05",
		HideKeys:        true,
	})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: marker-eval [flags] <image>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	algo, err := features.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal(err)
	}

	img, err := raster.OpenImage(path, *fit)
	if err != nil {
		log.Fatalf("load %s: %v", path, err)
	}
	r := raster.FromImage(img)
	log.Debugf("loaded %s (%dx%d)", path, r.Width, r.Height)

	opts := features.DefaultOptions()
	opts.Algorithm = algo
	opts.MaxFeatures = *maxFeatures

	feats, err := features.Detect(r, opts)
	if err != nil {
		log.Fatalf("detection failed: %v", err)
	}
	log.Debugf("detected %d features with %s", len(feats), algo)

	q, err := quality.NewEvaluator().Evaluate(r, feats)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	log.Infof("overall trackability %d/100 (%d features)", q.Overall, len(feats))

	if *overlayPath != "" {
		overlay := render.Overlay(img, feats)
		if err := imgio.Save(*overlayPath, overlay, imgio.PNGEncoder()); err != nil {
			log.Fatalf("write overlay: %v", err)
		}
		log.Infof("wrote overlay to %s", *overlayPath)
	}

	rep := report{
		Source:   path,
		Width:    r.Width,
		Height:   r.Height,
		Features: feats,
		Quality:  q,
	}
	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

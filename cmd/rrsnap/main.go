// Command rrsnap renders the spinning cube without a window and writes the
// last frame as a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	"rrast/app"
	"rrast/hal"
	"rrast/raster"
)

type options struct {
	frames int
	width  int
	height int
	fovDeg float64
	speed  float64
}

var errBadOptions = errors.New("bad options")

func main() {
	var (
		out  = flag.String("o", "frame.png", "Output PNG path (- for stdout).")
		opts options
	)
	flag.IntVar(&opts.frames, "frames", 1, "Frames to advance before capturing.")
	flag.IntVar(&opts.width, "width", 320, "Image width in pixels.")
	flag.IntVar(&opts.height, "height", 240, "Image height in pixels.")
	flag.Float64Var(&opts.fovDeg, "fov", 60, "Field of view in degrees.")
	flag.Float64Var(&opts.speed, "speed", 0.09, "Rotation per frame in radians.")
	flag.Parse()

	if err := run(*out, opts); err != nil {
		fatalf("rrsnap: %v", err)
	}
}

// run writes the snapshot to path, or to stdout for "-". The file is
// closed before returning so a failed flush is reported.
func run(path string, opts options) error {
	if path == "-" {
		return snapshot(os.Stdout, os.Stderr, opts)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot(f, os.Stderr, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// snapshot steps the demo opts.frames times and encodes the final frame,
// top row first, to w.
func snapshot(w, logw io.Writer, opts options) error {
	if opts.frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", errBadOptions, opts.frames)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("%w: size %dx%d", errBadOptions, opts.width, opts.height)
	}
	if opts.fovDeg <= 0 || opts.fovDeg >= 180 {
		return fmt.Errorf("%w: fov %v", errBadOptions, opts.fovDeg)
	}

	h := hal.NewWithLog(opts.width, opts.height, logw)
	d := app.NewDemo(h, app.Config{
		FOV:      float32(opts.fovDeg * math.Pi / 180),
		Speed:    float32(opts.speed),
		LogEvery: -1,
	})
	for i := 0; i < opts.frames; i++ {
		if err := d.Step(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	img := raster.NewImageTarget(d.Renderer())
	raster.Blit(img, d.Renderer(), true)
	if err := png.Encode(w, img.Img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

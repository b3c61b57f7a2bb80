package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"

	"rrast/app"
	"rrast/hal"
	"rrast/internal/buildinfo"
)

func main() {
	var (
		headless hal.HeadlessConfig
		win      hal.WindowConfig
		cfg      app.Config
		fovDeg   float64
		speed    float64
		version  bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&win.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&win.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&win.Scale, "scale", 1, "Window pixels per framebuffer pixel.")
	flag.Float64Var(&fovDeg, "fov", 60, "Field of view in degrees.")
	flag.Float64Var(&speed, "speed", 0.09, "Rotation per frame in radians.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show the status overlay (toggle with Tab or h).")
	flag.IntVar(&cfg.LogEvery, "log-every", 120, "Frames between stat log lines (negative disables).")
	flag.BoolVar(&version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if fovDeg <= 0 || fovDeg >= 180 {
		fatalf("fov must be in (0, 180) degrees, got %v", fovDeg)
	}
	cfg.FOV = float32(fovDeg * math.Pi / 180)
	cfg.Speed = float32(speed)

	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if headless.Enabled {
		headless.Width, headless.Height = win.Width, win.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

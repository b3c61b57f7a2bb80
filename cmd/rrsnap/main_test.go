package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotWritesPNG(t *testing.T) {
	var buf, logs bytes.Buffer
	err := snapshot(&buf, &logs, options{frames: 3, width: 64, height: 48, fovDeg: 60, speed: 0.09})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("bounds = %v, want 64x48", b)
	}
	if r, g, b, _ := img.At(32, 24).RGBA(); r == 0 && g == 0 && b == 0 {
		t.Fatalf("centre pixel is black, want cube")
	}
	if r, g, b, a := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("corner pixel = (%d,%d,%d,%d), want opaque black", r, g, b, a)
	}
	if !strings.HasPrefix(logs.String(), "rrast ") {
		t.Fatalf("log = %q, want startup line", logs.String())
	}
}

func TestSnapshotRejectsBadOptions(t *testing.T) {
	for _, opts := range []options{
		{frames: 0, width: 8, height: 8, fovDeg: 60},
		{frames: 1, width: 0, height: 8, fovDeg: 60},
		{frames: 1, width: 8, height: 8, fovDeg: 180},
	} {
		if err := snapshot(io.Discard, io.Discard, opts); !errors.Is(err, errBadOptions) {
			t.Fatalf("snapshot(%+v) = %v, want errBadOptions", opts, err)
		}
	}
}

func TestRunWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := run(path, options{frames: 1, width: 16, height: 12, fovDeg: 60}); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("bounds = %v, want 16x12", b)
	}
}

func TestRunReportsErrors(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "missing", "frame.png"), options{frames: 1, width: 8, height: 8, fovDeg: 60}); err == nil {
		t.Fatal("run into a missing directory succeeded")
	}
	path := filepath.Join(dir, "bad.png")
	if err := run(path, options{frames: 0, width: 8, height: 8, fovDeg: 60}); !errors.Is(err, errBadOptions) {
		t.Fatalf("run = %v, want errBadOptions", err)
	}
}

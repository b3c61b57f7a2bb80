package raster

import (
	"image/color"

	"rrast/geom"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGBA implements image/color.Color. The channels are treated as already
// premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.StdRGBA().RGBA()
}

// StdRGBA returns c as an image/color.RGBA value.
func (c Color) StdRGBA() color.RGBA { return color.RGBA(c) }

// Vec4ToColor quantizes a floating RGBA color. Each channel is scaled by
// 255, clamped to [0, 255] and truncated.
func Vec4ToColor(v geom.Vector4[float32]) Color {
	return Color{
		R: quantize(v.X),
		G: quantize(v.Y),
		B: quantize(v.Z),
		A: quantize(v.W),
	}
}

func quantize(ch float32) uint8 {
	v := ch * 255
	// Written so NaN lands on 0.
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

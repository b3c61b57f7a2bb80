package raster

import "image"

// Target is a minimal pixel sink that a Renderer's framebuffer can be
// copied into.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Blit copies the renderer's framebuffer into t. Only the overlapping area
// is copied. With flipY set, framebuffer row y lands on target row
// h-1-y, turning the rasterizer's y-up image into a y-down one.
func Blit(t Target, r *Renderer, flipY bool) {
	if t == nil || r == nil {
		return
	}
	tw, th := t.Size()
	w, h := int(r.width), int(r.height)
	cw, ch := min(tw, w), min(th, h)

	for y := 0; y < ch; y++ {
		src := y
		if flipY {
			src = h - 1 - y
		}
		row := r.framebuffer[src*w : src*w+w]
		for x := 0; x < cw; x++ {
			t.SetPixel(x, y, row[x])
		}
	}
}

// RGB565Target renders into an RGB565 byte buffer.
//
// Callers provide the backing buffer and its layout (stride); pixels are
// stored little-endian.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := RGB565(c)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := RGB565(c)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// RGB565 packs c as rrrrrggggggbbbbb, dropping alpha.
func RGB565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// FromRGB565 expands p to an opaque Color, scaling each field to the full
// 8-bit range.
func FromRGB565(p uint16) Color {
	r := (p >> 11) & 0x1F
	g := (p >> 5) & 0x3F
	b := p & 0x1F
	return RGB(uint8(r*255/31), uint8(g*255/63), uint8(b*255/31))
}

// ImageTarget renders into an *image.RGBA.
type ImageTarget struct {
	Img *image.RGBA
}

// NewImageTarget allocates an image of the renderer's size.
func NewImageTarget(r *Renderer) *ImageTarget {
	w, h := r.Dimensions()
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, int(w), int(h)))}
}

func (t *ImageTarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c.StdRGBA())
}

func (t *ImageTarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	rgba := c.StdRGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.SetRGBA(x, y, rgba)
		}
	}
}

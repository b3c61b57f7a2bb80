package raster

import (
	"math"

	"rrast/geom"
)

// Vertex is an object-space position with a floating RGBA color.
// Color channels are nominally in [0, 1]; out-of-range values are clamped
// when written to the framebuffer.
type Vertex struct {
	Position geom.Vector3[float32]
	Color    geom.Vector4[float32]
}

// Triangle is three vertices in drawing order. Winding is evaluated after
// projection: only triangles that are counter-clockwise on screen (with y
// pointing up) are drawn.
type Triangle struct {
	A, B, C Vertex
}

// RenderStats counts what happened to the triangles of one Render call.
type RenderStats struct {
	Triangles int // submitted
	Culled    int // back-facing or degenerate
	Clipped   int // entirely outside the screen
	Drawn     int // reached the fill loop
	Pixels    int // framebuffer writes
}

func (s *RenderStats) Add(o RenderStats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Clipped += o.Clipped
	s.Drawn += o.Drawn
	s.Pixels += o.Pixels
}

// Renderer is a fixed-pipeline software rasterizer that owns its
// framebuffer.
//
// Create it once per output size and reuse it across frames.
type Renderer struct {
	width  uint32
	height uint32

	framebuffer []Color
	perspective geom.Matrix4[float32]
}

// NewRenderer creates a renderer with a width*height framebuffer cleared to
// opaque black. fov is the field of view in radians, used for both axes.
func NewRenderer(width, height uint32, fov float32) *Renderer {
	scale := float32(math.Tan(float64(fov) * 0.5))
	fb := make([]Color, int(width)*int(height))
	black := RGB(0, 0, 0)
	for i := range fb {
		fb[i] = black
	}
	return &Renderer{
		width:       width,
		height:      height,
		framebuffer: fb,
		perspective: geom.Perspective(scale*2, scale*2, -1, 1),
	}
}

func (r *Renderer) Dimensions() (w, h uint32) { return r.width, r.height }

// Perspective returns the projection fixed at construction.
func (r *Renderer) Perspective() geom.Matrix4[float32] { return r.perspective }

// Pixels exposes the framebuffer, row-major with row 0 at the bottom.
// Callers must not resize it.
func (r *Renderer) Pixels() []Color { return r.framebuffer }

func (r *Renderer) Clear(c Color) {
	for i := range r.framebuffer {
		r.framebuffer[i] = c
	}
}

// GetPixel returns the pixel at (x, y). Coordinates are not checked;
// out-of-range values panic.
func (r *Renderer) GetPixel(x, y uint32) Color {
	return r.framebuffer[r.index(x, y)]
}

// SetPixel writes the pixel at (x, y). Coordinates are not checked.
func (r *Renderer) SetPixel(x, y uint32, c Color) {
	r.framebuffer[r.index(x, y)] = c
}

func (r *Renderer) index(x, y uint32) int {
	return int(y)*int(r.width) + int(x)
}

// Render draws triangles, transformed by transform and the renderer's
// projection, over the current framebuffer contents.
func (r *Renderer) Render(transform geom.Matrix4[float32], triangles []Triangle) {
	r.RenderWithStats(transform, triangles)
}

// RenderWithStats is Render that also reports per-stage triangle counts.
func (r *Renderer) RenderWithStats(transform geom.Matrix4[float32], triangles []Triangle) RenderStats {
	var st RenderStats

	w, h := float32(r.width), float32(r.height)
	screen := geom.RectFromBounds(0, 0, w, h)
	combined := r.perspective.Mul(transform)

	for i := range triangles {
		tri := &triangles[i]
		st.Triangles++

		a, az := toScreen(combined, tri.A.Position, w, h)
		b, bz := toScreen(combined, tri.B.Position, w, h)
		c, cz := toScreen(combined, tri.C.Position, w, h)

		// Also rejects NaN areas.
		if !(b.Sub(a).Cross(c.Sub(a)) > 0) {
			st.Culled++
			continue
		}

		bb, _ := geom.RectFromPoints(a, b, c)
		bb = bb.Intersection(screen)
		if bb.Empty() {
			st.Clipped++
			continue
		}

		st.Drawn++
		st.Pixels += r.fill(tri, bb, a, b, c, az, bz, cz)
	}
	return st
}

// toScreen projects p to pixel coordinates and returns its NDC z
// separately.
func toScreen(m geom.Matrix4[float32], p geom.Vector3[float32], w, h float32) (geom.Vector2[float32], float32) {
	v := m.Transform(p)
	return geom.Vec2((v.X+1)/2*w, (v.Y+1)/2*h), v.Z
}

// fill scans the pixel rectangle covering bb and writes every pixel whose
// centre has non-negative weights for all three vertices. The weights are
// sub-triangle areas scaled by each vertex's NDC z, normalized by their
// sum; a zero sum gives NaN weights and the pixel is skipped.
func (r *Renderer) fill(tri *Triangle, bb geom.BoundRect[float32], a, b, c geom.Vector2[float32], az, bz, cz float32) int {
	xmin := uint32(math.Floor(float64(bb.Min.X)))
	ymin := uint32(math.Floor(float64(bb.Min.Y)))
	xmax := uint32(math.Ceil(float64(bb.Max.X)))
	ymax := uint32(math.Ceil(float64(bb.Max.Y)))

	s1 := b.Sub(a)
	s2 := c.Sub(b)
	s3 := a.Sub(c)

	written := 0
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			p := geom.Vec2(float32(x)+0.5, float32(y)+0.5)

			apart := s2.Cross(p.Sub(b)) / 2 * az
			bpart := s3.Cross(p.Sub(c)) / 2 * bz
			cpart := s1.Cross(p.Sub(a)) / 2 * cz

			sum := apart + bpart + cpart
			apart /= sum
			bpart /= sum
			cpart /= sum

			if !(apart >= 0 && bpart >= 0 && cpart >= 0) {
				continue
			}

			col := tri.A.Color.Scale(apart).
				Add(tri.B.Color.Scale(bpart)).
				Add(tri.C.Color.Scale(cpart))
			r.SetPixel(x, y, Vec4ToColor(col))
			written++
		}
	}
	return written
}

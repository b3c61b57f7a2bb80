package raster

import (
	"math"
	"testing"

	"rrast/geom"
)

// With a 90° field of view the projection maps the z = -1 plane straight
// onto NDC, so test triangles can be written in screen-relative terms.
const quarterTurn = float32(math.Pi / 2)

var (
	red   = geom.Vec4[float32](1, 0, 0, 1)
	green = geom.Vec4[float32](0, 1, 0, 1)
	black = RGB(0, 0, 0)
)

func solid(col geom.Vector4[float32], a, b, c geom.Vector3[float32]) Triangle {
	return Triangle{
		A: Vertex{Position: a, Color: col},
		B: Vertex{Position: b, Color: col},
		C: Vertex{Position: c, Color: col},
	}
}

// smallTriangle covers the centres of pixels (1,1) and (2,1) on a 4x4
// framebuffer.
func smallTriangle(col geom.Vector4[float32]) Triangle {
	return solid(col,
		geom.Vec3[float32](-0.5, -0.5, -1),
		geom.Vec3[float32](0.5, -0.5, -1),
		geom.Vec3[float32](0, 0.5, -1),
	)
}

// fullTriangle covers every pixel centre of a 4x4 framebuffer.
func fullTriangle(col geom.Vector4[float32]) Triangle {
	return solid(col,
		geom.Vec3[float32](-1, -1, -1),
		geom.Vec3[float32](3, -1, -1),
		geom.Vec3[float32](-1, 3, -1),
	)
}

func countNot(r *Renderer, c Color) int {
	n := 0
	for _, p := range r.Pixels() {
		if p != c {
			n++
		}
	}
	return n
}

func TestNewRendererStartsBlack(t *testing.T) {
	r := NewRenderer(3, 2, quarterTurn)
	if w, h := r.Dimensions(); w != 3 || h != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", w, h)
	}
	if got := len(r.Pixels()); got != 6 {
		t.Fatalf("framebuffer len = %d, want 6", got)
	}
	if n := countNot(r, black); n != 0 {
		t.Fatalf("%d pixels not opaque black after construction", n)
	}
}

func TestClear(t *testing.T) {
	r := NewRenderer(2, 2, quarterTurn)
	bg := RGBA(10, 20, 30, 255)
	r.Clear(bg)
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 2; x++ {
			if got := r.GetPixel(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestGetSetPixel(t *testing.T) {
	r := NewRenderer(4, 3, quarterTurn)
	c := RGB(1, 2, 3)
	r.SetPixel(3, 2, c)
	if got := r.GetPixel(3, 2); got != c {
		t.Fatalf("GetPixel = %v, want %v", got, c)
	}
	if got := r.Pixels()[2*4+3]; got != c {
		t.Fatalf("row-major index holds %v, want %v", got, c)
	}
	if n := countNot(r, black); n != 1 {
		t.Fatalf("%d pixels changed, want 1", n)
	}
}

func TestSetPixelOutOfRangePanics(t *testing.T) {
	r := NewRenderer(2, 2, quarterTurn)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range pixel")
		}
	}()
	r.SetPixel(0, 2, black)
}

func TestProjectionIsIdentityOnNearPlane(t *testing.T) {
	r := NewRenderer(4, 4, quarterTurn)
	p := r.Perspective().Transform(geom.Vec3[float32](0.25, -0.5, -1))
	if p.X != 0.25 || p.Y != -0.5 {
		t.Fatalf("projected = %v, want x=0.25 y=-0.5", p)
	}
}

func TestRenderSolidTriangle(t *testing.T) {
	r := NewRenderer(4, 4, quarterTurn)
	st := r.RenderWithStats(geom.Identity[float32](), []Triangle{smallTriangle(red)})

	want := RGB(255, 0, 0)
	inside := map[[2]uint32]bool{{1, 1}: true, {2, 1}: true}
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			got := r.GetPixel(x, y)
			if inside[[2]uint32{x, y}] {
				if got != want {
					t.Fatalf("interior pixel (%d,%d) = %v, want %v", x, y, got, want)
				}
				continue
			}
			if got != black {
				t.Fatalf("exterior pixel (%d,%d) = %v, want untouched", x, y, got)
			}
		}
	}
	if st != (RenderStats{Triangles: 1, Drawn: 1, Pixels: 2}) {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRenderAppliesTransform(t *testing.T) {
	tri := smallTriangle(red)
	for _, v := range []*Vertex{&tri.A, &tri.B, &tri.C} {
		v.Position.Z = 0
	}

	r := NewRenderer(4, 4, quarterTurn)
	r.Render(geom.Translation(geom.Vec3[float32](0, 0, -1)), []Triangle{tri})

	if got := r.GetPixel(1, 1); got != RGB(255, 0, 0) {
		t.Fatalf("pixel (1,1) = %v, want red", got)
	}
	if n := countNot(r, black); n != 2 {
		t.Fatalf("%d pixels written, want 2", n)
	}
}

func TestRenderCullsBackfaces(t *testing.T) {
	tri := smallTriangle(red)
	tri.B, tri.C = tri.C, tri.B

	degenerate := solid(red,
		geom.Vec3[float32](-1, -1, -1),
		geom.Vec3[float32](0, 0, -1),
		geom.Vec3[float32](1, 1, -1),
	)

	r := NewRenderer(4, 4, quarterTurn)
	st := r.RenderWithStats(geom.Identity[float32](), []Triangle{tri, degenerate})
	if n := countNot(r, black); n != 0 {
		t.Fatalf("%d pixels written by culled triangles", n)
	}
	if st.Culled != 2 || st.Drawn != 0 {
		t.Fatalf("stats = %+v, want 2 culled", st)
	}
}

func TestRenderSkipsOffscreen(t *testing.T) {
	off := solid(red,
		geom.Vec3[float32](1.5, 1.5, -1),
		geom.Vec3[float32](3, 1.5, -1),
		geom.Vec3[float32](2, 3, -1),
	)
	left := solid(red,
		geom.Vec3[float32](-4, -0.5, -1),
		geom.Vec3[float32](-3, -0.5, -1),
		geom.Vec3[float32](-3.5, 0.5, -1),
	)

	r := NewRenderer(4, 4, quarterTurn)
	st := r.RenderWithStats(geom.Identity[float32](), []Triangle{off, left})
	if n := countNot(r, black); n != 0 {
		t.Fatalf("%d pixels written by off-screen triangles", n)
	}
	if st.Clipped != 2 {
		t.Fatalf("stats = %+v, want 2 clipped", st)
	}
}

func TestRenderLaterTrianglesWin(t *testing.T) {
	r := NewRenderer(4, 4, quarterTurn)
	r.Render(geom.Identity[float32](), []Triangle{fullTriangle(green), smallTriangle(red)})

	if got := r.GetPixel(1, 1); got != RGB(255, 0, 0) {
		t.Fatalf("overlap pixel = %v, want red on top", got)
	}
	if got := r.GetPixel(0, 0); got != RGB(0, 255, 0) {
		t.Fatalf("background pixel = %v, want green", got)
	}

	r.Clear(black)
	r.Render(geom.Identity[float32](), []Triangle{smallTriangle(red), fullTriangle(green)})
	if n := countNot(r, RGB(0, 255, 0)); n != 0 {
		t.Fatalf("%d pixels not green after full overdraw", n)
	}
}

func TestRenderInterpolatesColor(t *testing.T) {
	tri := fullTriangle(red)
	tri.B.Color = green

	r := NewRenderer(4, 4, quarterTurn)
	r.Render(geom.Identity[float32](), []Triangle{tri})

	// Moving right along the bottom row shifts weight from A to B.
	prev := r.GetPixel(0, 0)
	for x := uint32(1); x < 4; x++ {
		cur := r.GetPixel(x, 0)
		if !(cur.R < prev.R && cur.G > prev.G) {
			t.Fatalf("pixel %d = %v does not move from red towards green (prev %v)", x, cur, prev)
		}
		prev = cur
	}
	if got := r.GetPixel(0, 0); got.A != 255 {
		t.Fatalf("alpha = %d, want 255", got.A)
	}
}

func TestRenderStatsAdd(t *testing.T) {
	var total RenderStats
	total.Add(RenderStats{Triangles: 2, Culled: 1, Drawn: 1, Pixels: 10})
	total.Add(RenderStats{Triangles: 1, Clipped: 1})
	want := RenderStats{Triangles: 3, Culled: 1, Clipped: 1, Drawn: 1, Pixels: 10}
	if total != want {
		t.Fatalf("total = %+v, want %+v", total, want)
	}
}

func TestRenderWeightsByDepth(t *testing.T) {
	// Under the 90° projection a vertex at depth z projects to (x/-z, y/-z)
	// with NDC z = 1/z. These land on screen at (0,0), (8,0) and (0,8)
	// with NDC z -1, -0.5 and -0.25.
	tri := Triangle{
		A: Vertex{Position: geom.Vec3[float32](-1, -1, -1), Color: geom.Vec4[float32](1, 0, 0, 1)},
		B: Vertex{Position: geom.Vec3[float32](6, -2, -2), Color: geom.Vec4[float32](0, 1, 0, 1)},
		C: Vertex{Position: geom.Vec3[float32](-4, 12, -4), Color: geom.Vec4[float32](0, 0, 1, 1)},
	}

	r := NewRenderer(4, 4, quarterTurn)
	st := r.RenderWithStats(geom.Identity[float32](), []Triangle{tri})
	if st.Pixels != 16 {
		t.Fatalf("stats = %+v, want all 16 pixels", st)
	}

	// At the centre of pixel (1,0), p = (1.5, 0.5), the half sub-areas
	// opposite A, B and C are 24, 6 and 2. Scaled by NDC z they become
	// -24, -3 and -0.5, so the weights are 24/27.5, 3/27.5 and 0.5/27.5.
	got := r.GetPixel(1, 0)
	if got.R != 222 || got.G != 27 || got.B != 4 {
		t.Fatalf("pixel (1,0) = %v, want R=222 G=27 B=4", got)
	}
}

func TestRenderSkipsZeroWeightSum(t *testing.T) {
	// Zeroing the w row of the transform drives every vertex's NDC z to
	// zero while leaving its screen position alone, so all three weights
	// are 0/0.
	flat := geom.Identity[float32]()
	flat[3][3] = 0

	r := NewRenderer(4, 4, quarterTurn)
	st := r.RenderWithStats(flat, []Triangle{fullTriangle(red)})
	if n := countNot(r, black); n != 0 {
		t.Fatalf("%d pixels written with NaN weights", n)
	}
	if st != (RenderStats{Triangles: 1, Drawn: 1}) {
		t.Fatalf("stats = %+v, want drawn with no pixels", st)
	}
}

// Package app is the spinning-cube demo driven by the hal runners. It owns
// the animation state, renders one frame per step and presents it on the
// hal framebuffer.
package app

import (
	"fmt"
	"math"

	"rrast/geom"
	"rrast/hal"
	"rrast/internal/buildinfo"
	"rrast/raster"
)

const (
	defaultFOV      = float32(math.Pi / 3)
	defaultSpeed    = float32(0.09)
	defaultLogEvery = 120
	speedStep       = float32(0.01)
)

// ErrQuit is returned by a step when the user asked to exit.
var ErrQuit = hal.ErrQuit

type Config struct {
	FOV      float32 // radians; 0 uses π/3
	Speed    float32 // rotation added per step; 0 uses 0.09
	HUD      bool
	LogEvery int // frames between stat lines; 0 uses 120, negative disables
}

// Demo is the per-frame driver.
type Demo struct {
	cfg    Config
	log    hal.Logger
	fb     hal.Framebuffer
	keys   <-chan hal.KeyEvent
	ticks  <-chan uint64
	r      *raster.Renderer
	hud    *hud
	scene  []raster.Triangle
	paused bool

	rotation float32
	frames   uint64
	last     raster.RenderStats

	// fps bookkeeping over 1ms hal ticks.
	winMs     uint64
	winFrames int
	fps       int
}

// New builds the demo and returns its step function, in the shape the hal
// runners expect.
func New(h hal.HAL, cfg Config) func() error {
	d := NewDemo(h, cfg)
	return guard(h, d.Step)
}

func NewDemo(h hal.HAL, cfg Config) *Demo {
	if cfg.FOV <= 0 {
		cfg.FOV = defaultFOV
	}
	if cfg.Speed == 0 {
		cfg.Speed = defaultSpeed
	}
	if cfg.LogEvery == 0 {
		cfg.LogEvery = defaultLogEvery
	}

	d := &Demo{
		cfg:   cfg,
		log:   h.Logger(),
		scene: CubeTriangles(),
	}
	if disp := h.Display(); disp != nil {
		d.fb = disp.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kb := in.Keyboard(); kb != nil {
			d.keys = kb.Events()
		}
	}
	if t := h.Time(); t != nil {
		d.ticks = t.Ticks()
	}

	w, ht := DefaultSize()
	if d.fb != nil {
		w, ht = d.fb.Width(), d.fb.Height()
		d.hud = newHUD(d.fb)
	}
	d.r = raster.NewRenderer(uint32(w), uint32(ht), cfg.FOV)

	d.logf("rrast %s: %dx%d fov=%.3f speed=%.3f", buildinfo.Short(), w, ht, cfg.FOV, cfg.Speed)
	return d
}

// DefaultSize is the frame size used when the HAL has no display.
func DefaultSize() (w, h int) { return hal.DefaultWidth, hal.DefaultHeight }

// Step handles pending input, advances the animation and draws a frame.
func (d *Demo) Step() error {
	if err := d.handleInput(); err != nil {
		return err
	}
	if !d.paused {
		d.rotation += d.cfg.Speed
	}

	d.last = d.Render()
	d.frames++
	d.updateFPS()

	if d.cfg.LogEvery > 0 && d.frames%uint64(d.cfg.LogEvery) == 0 {
		d.logf("frame %d: fps=%d tris=%d culled=%d clipped=%d drawn=%d px=%d",
			d.frames, d.fps, d.last.Triangles, d.last.Culled, d.last.Clipped, d.last.Drawn, d.last.Pixels)
	}

	return d.present()
}

// Transform is the object-to-camera transform for the current rotation.
func (d *Demo) Transform() geom.Matrix4[float32] {
	rot := d.rotation
	return geom.Translation(geom.Vec3[float32](0, 0, -5)).
		Mul(geom.Rotation(geom.Vec3(rot/2, rot, rot/3)))
}

// Render clears the renderer and draws the scene without presenting it.
func (d *Demo) Render() raster.RenderStats {
	d.r.Clear(raster.RGB(0, 0, 0))
	return d.r.RenderWithStats(d.Transform(), d.scene)
}

// Pixel returns the rendered color at (x, y), y pointing up.
func (d *Demo) Pixel(x, y uint32) (r, g, b uint8) {
	c := d.r.GetPixel(x, y)
	return c.R, c.G, c.B
}

func (d *Demo) Renderer() *raster.Renderer { return d.r }
func (d *Demo) Rotation() float32          { return d.rotation }
func (d *Demo) Paused() bool               { return d.paused }
func (d *Demo) Stats() raster.RenderStats  { return d.last }

func (d *Demo) handleInput() error {
	if d.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-d.keys:
			if !ev.Press {
				continue
			}
			if err := d.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (d *Demo) handleKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyEscape:
		d.logf("quit after %d frames", d.frames)
		return ErrQuit
	case hal.KeySpace:
		d.paused = !d.paused
	case hal.KeyTab:
		d.cfg.HUD = !d.cfg.HUD
	case hal.KeyUp:
		d.cfg.Speed += speedStep
	case hal.KeyDown:
		d.cfg.Speed -= speedStep
	}
	switch ev.Rune {
	case 'q':
		d.logf("quit after %d frames", d.frames)
		return ErrQuit
	case 'h':
		d.cfg.HUD = !d.cfg.HUD
	}
	return nil
}

func (d *Demo) updateFPS() {
	d.winFrames++
	if d.ticks == nil {
		return
	}
	for {
		select {
		case <-d.ticks:
			d.winMs++
			continue
		default:
		}
		break
	}
	if d.winMs >= 1000 {
		d.fps = int(uint64(d.winFrames) * 1000 / d.winMs)
		d.winMs = 0
		d.winFrames = 0
	}
}

func (d *Demo) present() error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}

	d.draw()
	if err := d.fb.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", d.frames, err)
	}
	return nil
}

// draw copies the frame and the HUD into the framebuffer under its lock.
func (d *Demo) draw() {
	d.fb.Lock()
	defer d.fb.Unlock()

	target := &raster.RGB565Target{
		Buf:    d.fb.Buffer(),
		Stride: d.fb.StrideBytes(),
		W:      d.fb.Width(),
		H:      d.fb.Height(),
	}
	raster.Blit(target, d.r, true)
	if d.cfg.HUD && d.hud != nil {
		d.hud.draw(target, d.hudLines())
	}
}

func (d *Demo) hudLines() []string {
	state := "running"
	if d.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("rrast %s  %s", buildinfo.Short(), state),
		fmt.Sprintf("frame %d  fps %d", d.frames, d.fps),
		fmt.Sprintf("tris %d drawn %d px %d", d.last.Triangles, d.last.Drawn, d.last.Pixels),
	}
}

func (d *Demo) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

package app

import (
	"image/color"

	"rrast/hal"
	"rrast/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFG = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudBG = color.RGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF}
)

const hudMargin = 4

// hud draws status text over the presented frame.
type hud struct {
	font       tinyfont.Fonter
	lineHeight int16
	maxW       int16
}

func newHUD(fb hal.Framebuffer) *hud {
	font := &proggy.TinySZ8pt7b
	lh := int16(font.YAdvance)
	if lh <= 0 {
		lh = 10
	}
	return &hud{font: font, lineHeight: lh, maxW: int16(fb.Width())}
}

// draw writes lines top-down starting at the top-left corner, each over a
// solid backing strip sized to the text.
func (h *hud) draw(t *raster.RGB565Target, lines []string) {
	d := targetDisplayer{t: t}
	y := int16(hudMargin)
	for _, line := range lines {
		_, outbox := tinyfont.LineWidth(h.font, line)
		w := int16(outbox) + 2*hudMargin
		if w > h.maxW {
			w = h.maxW
		}
		fillRect(d, 0, y-hudMargin/2, w, h.lineHeight, hudBG)
		tinyfont.WriteLine(d, h.font, hudMargin, y+h.lineHeight-hudMargin/2, line, hudFG)
		y += h.lineHeight
	}
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.SetPixel(i, j, c)
		}
	}
}

// targetDisplayer adapts a raster target to the tinygo display driver
// interface tinyfont draws through.
type targetDisplayer struct {
	t *raster.RGB565Target
}

var _ drivers.Displayer = targetDisplayer{}

func (d targetDisplayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), raster.Color(c))
}

func (d targetDisplayer) Display() error { return nil }

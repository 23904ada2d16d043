// Implements a raster backend to render the workflow icon,
// by wrapping rasterx.
package iconraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/flowicon/glyph"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ glyph.Driver = (*Renderer)(nil) // assert interface conformance

// MaxSize is the largest icon side accepted by Render.
const MaxSize = 4096

// ErrInvalidSize is returned for sizes outside [1, MaxSize].
var ErrInvalidSize = errors.New("invalid icon size")

// coverageThreshold is the minimum coverage of a pixel
// for it to belong to a shape: shapes are drawn without anti-aliasing.
const coverageThreshold = 0x80

// Renderer draws hard edged shapes onto an NRGBA image.
// Each path is first rasterized by rasterx into a coverage
// buffer, which is then thresholded and painted.
type Renderer struct {
	dst      *image.NRGBA
	coverage *image.Alpha

	filler *filler // we use separated instance
	dasher *dasher
}

// NewRenderer returns a renderer drawing into `dst`.
func NewRenderer(dst *image.NRGBA) *Renderer {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rd := &Renderer{dst: dst, coverage: image.NewAlpha(bounds)}

	fillScanner := rasterx.NewScannerGV(w, h, rd.coverage, bounds)
	fillScanner.SetColor(color.Opaque)
	rd.filler = &filler{rd: rd, f: rasterx.NewFiller(w, h, fillScanner)}

	strokeScanner := rasterx.NewScannerGV(w, h, rd.coverage, bounds)
	strokeScanner.SetColor(color.Opaque)
	rd.dasher = &dasher{rd: rd, d: rasterx.NewDasher(w, h, strokeScanner)}
	return rd
}

func checkSize(size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("%w: %d (expected 1 to %d)", ErrInvalidSize, size, MaxSize)
	}
	return nil
}

// Render draws the active workflow icon at `size` x `size` pixels.
func Render(size int) (*image.NRGBA, error) {
	return RenderIcon(glyph.Workflow(), size)
}

// RenderIcon draws `icon` at `size` x `size` pixels:
// the gradient background, clipped to a circle, with the glyph on top.
// The output only depends on `icon` and `size`.
func RenderIcon(icon *glyph.Icon, size int) (*image.NRGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fillGradient(img, icon.Background)

	rd := NewRenderer(img)
	rd.Clip(icon.MaskPath(size))
	icon.Draw(rd, size)
	return img, nil
}

// fillGradient paints each row of `img` with its gradient color.
func fillGradient(img *image.NRGBA, g glyph.Gradient) {
	bounds := img.Bounds()
	size := bounds.Dy()
	for y := 0; y < size; y++ {
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(img, row, image.NewUniform(g.At(y, size)), image.Point{}, draw.Src)
	}
}

// Clip replaces the alpha channel of the destination by
// the (hard edged) coverage of the closed path `mask`:
// pixels outside become fully transparent, and pixels inside fully opaque.
// Color channels are left untouched.
func (rd *Renderer) Clip(mask glyph.Path) {
	rd.filler.Clear()
	mask.AddTo(rd.filler)
	rd.filler.Stop(false)
	rd.rasterize(rd.filler.f.Draw)

	bounds := rd.dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var a uint8
			if rd.coverage.Pix[rd.coverage.PixOffset(x, y)] >= coverageThreshold {
				a = 0xff
			}
			rd.dst.Pix[rd.dst.PixOffset(x, y)+3] = a
		}
	}
}

// rasterize resets the coverage buffer and fills it with `fill`.
func (rd *Renderer) rasterize(fill func()) {
	clear(rd.coverage.Pix)
	fill()
}

// paint sets every covered pixel to `ink`, ignoring the current alpha.
func (rd *Renderer) paint(ink color.Color) {
	c := color.NRGBAModel.Convert(ink).(color.NRGBA)
	bounds := rd.dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if rd.coverage.Pix[rd.coverage.PixOffset(x, y)] >= coverageThreshold {
				rd.dst.SetNRGBA(x, y, c)
			}
		}
	}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f glyph.Drawer, s glyph.Stroker) {
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

// filler implements glyph.Drawer
type filler struct {
	rd  *Renderer
	f   *rasterx.Filler
	ink color.Color
}

func (f *filler) Clear() {
	f.f.Clear()
	f.f.SetWinding(true)
}

func (f *filler) Start(a fixed.Point26_6)            { f.f.Start(a) }
func (f *filler) Line(b fixed.Point26_6)             { f.f.Line(b) }
func (f *filler) CubeBezier(b, c, d fixed.Point26_6) { f.f.CubeBezier(b, c, d) }
func (f *filler) Stop(closeLoop bool)                { f.f.Stop(closeLoop) }
func (f *filler) SetColor(c color.Color)             { f.ink = c }

func (f *filler) Draw() {
	f.rd.rasterize(f.f.Draw)
	f.rd.paint(f.ink)
}

// dasher implements glyph.Stroker, without dashes
type dasher struct {
	rd  *Renderer
	d   *rasterx.Dasher
	ink color.Color
}

func (d *dasher) Clear() { d.d.Clear() }

// SetStrokeWidth uses square caps, so that a one pixel wide
// segment covers its end pixels, and miter joins.
func (d *dasher) SetStrokeWidth(width fixed.Int26_6) {
	d.d.SetStroke(width, fixed.I(4), rasterx.SquareCap, rasterx.SquareCap,
		rasterx.FlatGap, rasterx.Miter, nil, 0)
}

func (d *dasher) Start(a fixed.Point26_6)            { d.d.Start(a) }
func (d *dasher) Line(b fixed.Point26_6)             { d.d.Line(b) }
func (d *dasher) CubeBezier(b, c, e fixed.Point26_6) { d.d.CubeBezier(b, c, e) }
func (d *dasher) Stop(closeLoop bool)                { d.d.Stop(closeLoop) }
func (d *dasher) SetColor(c color.Color)             { d.ink = c }

func (d *dasher) Draw() {
	d.rd.rasterize(d.d.Draw)
	d.rd.paint(d.ink)
}
